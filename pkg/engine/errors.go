package engine

import "errors"

var (
	// ErrConfig is returned for a configuration that fails validation.
	ErrConfig = errors.New("invalid config")

	// ErrUnknownOp is returned by Batch for an operation it does not know.
	ErrUnknownOp = errors.New("unknown batch operation")
)
