package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ricettario/internal/adapters/storage"
	"ricettario/internal/adapters/web"
	"ricettario/internal/config"
	"ricettario/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "path to a YAML config file")
	addrFlag := flag.String("addr", "", "listen address (overrides web.addr)")
	flag.Parse()

	if err := run(*configFlag, *addrFlag); err != nil {
		logging.Error().Err(err).Msg("ricettario-web stopped")
		os.Exit(1)
	}
}

func run(configPath, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Web.Addr = addr
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	classifier := cfg.Classifier()
	repo, err := storage.Open(ctx, cfg, classifier)
	if err != nil {
		return err
	}
	defer repo.Close()

	srv, err := web.NewServer(repo, classifier)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Web.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.Web.Addr).Str("backend", cfg.Store.Backend).Msg("ricettario-web listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logging.Info().Msg("shutting down")
	return httpServer.Shutdown(shutdownCtx)
}
