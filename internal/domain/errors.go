package domain

import "errors"

// Sentinel errors shared by stores and the application layer.
var (
	ErrNotFound = errors.New("recipe not found")
)
