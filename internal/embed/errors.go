package embed

import "errors"

// Domain errors for embedding operations.
var (
	// ErrDimensionNotPositive indicates an embedding dimension below 1.
	ErrDimensionNotPositive = errors.New("embed: embedding dimension must be positive")

	// ErrDelayNotPositive indicates a delay below 1.
	ErrDelayNotPositive = errors.New("embed: delay must be positive")

	// ErrSeriesTooShort indicates a series shorter than (m-1)*tau + 1.
	ErrSeriesTooShort = errors.New("embed: series too short for requested embedding")
)
