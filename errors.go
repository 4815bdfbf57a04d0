package nereval

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrMalformedInput indicates an input file could not be parsed into
	// the required tabular shape.
	ErrMalformedInput = errors.New("nereval: malformed input")

	// ErrMissingColumn indicates a required column is absent from the
	// header row. Errors carrying it also match ErrMalformedInput.
	ErrMissingColumn = errors.New("nereval: missing required column")
)
