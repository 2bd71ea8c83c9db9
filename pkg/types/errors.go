// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Conversion error taxonomy. Callers match with errors.Is; the wrapped error
// carries the path and the underlying cause.
var (
	// ErrSourceNotFound reports an input path or URL that could not be read.
	ErrSourceNotFound = errors.New("source not found")

	// ErrOutputWriteFailed reports a destination that could not be written.
	ErrOutputWriteFailed = errors.New("output write failed")

	// ErrInvalidOptions reports rejected render or conversion settings.
	ErrInvalidOptions = errors.New("invalid options")
)
