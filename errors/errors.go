// Package errors defines all exported error sentinels for the uniform library.
//
// This is the single source of truth for error values. The top-level uniform
// package wraps these with call-site context via fmt.Errorf("%w: ..."), so
// errors.Is checks work regardless of where an error surfaced.
package errors

import "errors"

// Construction errors
var (
	// ErrInvalidRange reports a bound pair whose lower bound exceeds its
	// upper bound (after exclusive-to-inclusive conversion). It is raised
	// only at construction time, never during sampling.
	ErrInvalidRange = errors.New("uniform: invalid range: low bound exceeds high bound")
)

// Serialization errors
var (
	ErrTruncated     = errors.New("uniform: sampler record is truncated")
	ErrChecksum      = errors.New("uniform: sampler record checksum mismatch")
	ErrVersion       = errors.New("uniform: unsupported sampler record version")
	ErrWidthMismatch = errors.New("uniform: sampler record width does not match target type")
)
