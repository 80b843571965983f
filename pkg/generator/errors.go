package generator

import (
	"github.com/pkg/errors"

	"github.com/Amr-9/RippleHunter/pkg/generator/seed"
)

var (
	// ErrEntropyUnavailable means seeds cannot be generated safely. Fatal to the run.
	ErrEntropyUnavailable = seed.ErrEntropyUnavailable

	// ErrDerivationFailure is fatal to the worker that hit it only.
	ErrDerivationFailure = errors.New("derivation failed")

	// ErrInvalidPattern marks a pattern that is dropped from the run.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNoPatterns means no valid pattern is left and the run cannot start.
	ErrNoPatterns = errors.New("no valid patterns provided")
)
