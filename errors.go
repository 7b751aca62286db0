package gotabular

import "errors"

// Common errors for client configuration and format selection.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownFormat = errors.New("unknown format")
)
