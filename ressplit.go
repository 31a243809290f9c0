package ressplit

import (
	"iter"

	"github.com/katalvlaran/ressplit/core"
	"github.com/katalvlaran/ressplit/group"
	"github.com/katalvlaran/ressplit/segment"
)

// Config bundles the knobs Split needs for both pipeline stages.
// MaxSegmentCount bounds both the segmenter's maximum segment weight and
// the grouper's maximum body-plus-overlap window, matching the reference
// pipeline's single-budget convenience wrapper.
type Config struct {
	// MaxSegmentCount is the hard ceiling the segmenter packs segments to,
	// and the window budget the grouper packs groups to. Must be positive.
	MaxSegmentCount int

	// BorderIncision seeds the segmenter's recursion floor. Pass
	// core.Impossible for a plain flatten that cuts at every sanctioned
	// boundary.
	BorderIncision core.Incision

	// GapRate sets the per-side overlap allowance as a fraction of
	// MaxSegmentCount (see group.Items); must be within [0, 0.5].
	GapRate float64

	// TailRate biases the per-group overlap target toward the tail
	// (forward) versus the head (backward); must be within [0, 1].
	TailRate float64
}

// Validate checks that every field of Config holds a usable combination,
// returning the same sentinel errors Split itself would.
func (c Config) Validate() error {
	if c.MaxSegmentCount <= 0 {
		return segment.ErrInvalidMaxSegmentCount
	}
	if !c.BorderIncision.Valid() {
		return core.ErrUnknownIncision
	}
	if c.GapRate < 0 || c.GapRate > 0.5 {
		return group.ErrGapRateOutOfRange
	}
	if c.TailRate < 0 || c.TailRate > 1 {
		return group.ErrTailRateOutOfRange
	}
	return nil
}

// Split runs the full pipeline: segment.Allocate cuts src into incision-
// aware items, group.Items packs those into overlapping windows, and
// group.TruncateGap trims each window's head/tail back to its recorded
// budget before it is yielded.
func Split[P any](src iter.Seq[core.Resource[P]], cfg Config) (iter.Seq[core.Group[P]], error) {
	items, err := segment.Allocate(src, cfg.BorderIncision, cfg.MaxSegmentCount)
	if err != nil {
		return nil, err
	}

	groups, err := group.Items[P](items, cfg.MaxSegmentCount, cfg.GapRate, cfg.TailRate)
	if err != nil {
		return nil, err
	}

	return func(yield func(core.Group[P]) bool) {
		for g := range groups {
			if !yield(group.TruncateGap(g)) {
				return
			}
		}
	}, nil
}
