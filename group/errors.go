package group

import "errors"

// Sentinel errors for grouper input validation.
var (
	// ErrInvalidMaxCount indicates max_count <= 0.
	ErrInvalidMaxCount = errors.New("group: max_count must be positive")

	// ErrGapRateOutOfRange indicates gap_rate was outside [0, 0.5].
	ErrGapRateOutOfRange = errors.New("group: gap_rate must be within [0, 0.5]")

	// ErrTailRateOutOfRange indicates tail_rate was outside [0, 1].
	ErrTailRateOutOfRange = errors.New("group: tail_rate must be within [0, 1]")
)
