package segment

import "errors"

// Sentinel errors for segment input validation.
//
// Error policy: every error returned across a package boundary either is
// a sentinel (one of these, or core.ErrUnknownIncision) or wraps one with
// %w; callers branch with errors.Is. Sentinels are never wrapped at the
// point of definition.
var (
	// ErrInvalidMaxSegmentCount indicates max_segment_count <= 0.
	ErrInvalidMaxSegmentCount = errors.New("segment: max_segment_count must be positive")
)
