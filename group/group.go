package group

import (
	"iter"
	"math"

	"github.com/katalvlaran/ressplit/core"
	"github.com/katalvlaran/ressplit/stream"
)

// Items packs src into a lazy sequence of Group records.
//
// gapRate sets the per-side overlap allowance
// gapMax = floor(maxCount * gapRate), and body is bounded by
// bodyMax = maxCount - 2*gapMax. tailRate divides the two-sided allowance
// 2*gapMax between the tail (forward, into the next group) and the head
// (backward, into the previous one); a group whose own body exceeds
// bodyMax gets a correspondingly smaller (down to zero) share of
// head/tail overlap, since it already spent its count budget on body.
// overlapTarget describes the one case in which a target may exceed
// gapMax.
//
// The first group's head and the last group's tail are always empty, and
// their HeadRemainCount and TailRemainCount respectively are 0.
func Items[P any](src iter.Seq[core.Item[P]], maxCount int, gapRate, tailRate float64) (iter.Seq[core.Group[P]], error) {
	if maxCount <= 0 {
		return nil, ErrInvalidMaxCount
	}
	if gapRate < 0 || gapRate > 0.5 {
		return nil, ErrGapRateOutOfRange
	}
	if tailRate < 0 || tailRate > 1 {
		return nil, ErrTailRateOutOfRange
	}

	gapMax := int(math.Floor(float64(maxCount) * gapRate))
	bodyMax := maxCount - 2*gapMax

	return func(yield func(core.Group[P]) bool) {
		s := stream.New(src)
		defer s.Close()

		var prevBody []core.Item[P]
		prevWeight := 0
		first := true

		for {
			body := collectBody(s, bodyMax)
			if len(body) == 0 {
				return
			}
			bodyWeight := weightSum(body)

			headTarget := 0
			var head []core.Item[P]
			if !first {
				headTarget = overlapTarget(maxCount, bodyMax, gapMax, bodyWeight, prevWeight, 1-tailRate)
				head = selectFromEnd(prevBody, headTarget)
			}

			// Look ahead at what the next body would be, purely to size the
			// tail target; everything pulled here is pushed straight back so
			// the next iteration's collectBody sees it fresh.
			nextBody := collectBody(s, bodyMax)
			tailTarget := overlapTarget(maxCount, bodyMax, gapMax, bodyWeight, weightSum(nextBody), tailRate)
			if len(nextBody) > 0 {
				s.Recover(nextBody...)
			}

			tail := peekTail(s, tailTarget)
			if len(tail) == 0 {
				tailTarget = 0
			}

			g := core.Group[P]{
				Head:            head,
				Body:            body,
				Tail:            tail,
				HeadRemainCount: headTarget,
				TailRemainCount: tailTarget,
			}
			if !yield(g) {
				return
			}

			prevBody = body
			prevWeight = bodyWeight
			first = false
		}
	}, nil
}

// overlapTarget computes one side's overlap budget: how much weight head
// or tail should aim to carry, biased by rate.
//
// A group whose own body already exceeds bodyMax has spent its count
// budget; its overlap on both sides shrinks toward zero as the overrun
// grows, split evenly between head and tail regardless of rate.
//
// Otherwise, when the body across the gap overruns bodyMax by no more
// than gapMax, this side reaches fully toward it (capped by the room
// left in maxCount after this group's own body) so a barely-oversized
// neighboring fragment isn't needlessly re-fragmented. A neighbor whose
// overrun exceeds gapMax is too large to chase this way and falls back
// to the plain rate-weighted share of the two-sided allowance 2*gapMax.
func overlapTarget(maxCount, bodyMax, gapMax, ownWeight, neighborWeight int, rate float64) int {
	if ownWeight > bodyMax {
		t := int(math.Round(float64(maxCount-ownWeight) / 2))
		if t < 0 {
			return 0
		}
		return t
	}
	if overrun := neighborWeight - bodyMax; overrun > 0 && overrun <= gapMax {
		t := maxCount - ownWeight
		if neighborWeight < t {
			t = neighborWeight
		}
		return t
	}
	return int(math.Round(float64(2*gapMax) * rate))
}

// collectBody greedily packs items from s into a body bounded by bodyMax.
// The first item is always taken, even alone it exceeds bodyMax; a lone
// oversize item forms a body on its own.
func collectBody[P any](s *stream.Stream[core.Item[P]], bodyMax int) []core.Item[P] {
	first, ok := s.Get()
	if !ok {
		return nil
	}
	body := []core.Item[P]{first}
	sum := first.Weight()

	for {
		next, ok := s.Get()
		if !ok {
			break
		}
		if sum+next.Weight() <= bodyMax {
			body = append(body, next)
			sum += next.Weight()
			continue
		}
		s.Recover(next)
		break
	}

	return body
}

// selectFromEnd returns the trailing items of body whose cumulative
// weight first reaches or crosses target, preserving order: the item
// closest to the body boundary that passed the threshold, the end.
func selectFromEnd[P any](items []core.Item[P], target int) []core.Item[P] {
	if target <= 0 || len(items) == 0 {
		return nil
	}
	sum := 0
	idx := len(items)
	for i := len(items) - 1; i >= 0; i-- {
		if sum >= target {
			break
		}
		sum += items[i].Weight()
		idx = i
	}
	return items[idx:]
}

// peekTail pulls items forward from s accumulating weight until target is
// reached or crossed (or the stream runs dry), then pushes everything it
// pulled back so the next group's body starts from the same items.
func peekTail[P any](s *stream.Stream[core.Item[P]], target int) []core.Item[P] {
	if target <= 0 {
		return nil
	}
	var pulled []core.Item[P]
	sum := 0
	for sum < target {
		item, ok := s.Get()
		if !ok {
			break
		}
		pulled = append(pulled, item)
		sum += item.Weight()
	}
	if len(pulled) > 0 {
		s.Recover(pulled...)
	}
	return pulled
}

func weightSum[P any](items []core.Item[P]) int {
	sum := 0
	for _, it := range items {
		sum += it.Weight()
	}
	return sum
}
