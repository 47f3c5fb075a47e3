package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ricettario/internal/logging"
)

// LogToolCalls logs every tool call with its outcome and duration.
func LogToolCalls(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := next(ctx, req)

		event := logging.Info()
		if err != nil {
			event = logging.Err(err)
		} else if result != nil && result.IsError {
			event = logging.Warn()
		}
		event.
			Str("tool", req.Params.Name).
			Dur("duration", time.Since(start)).
			Msg("tool call")
		return result, err
	}
}
