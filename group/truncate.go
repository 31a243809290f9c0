package group

import "github.com/katalvlaran/ressplit/core"

// TruncateGap trims a Group's head and tail down to their recorded
// HeadRemainCount/TailRemainCount budgets, preserving the items closest to
// the body (trailing items survive in head, leading items survive in
// tail) and recomputing both remain counts from the truncated contents. A
// Segment straddling the cut line is itself trimmed resource by resource;
// a Resource is atomic and is either kept whole or dropped. g is not
// mutated; TruncateGap returns a new Group.
func TruncateGap[P any](g core.Group[P]) core.Group[P] {
	head := truncateItems(g.Head, g.HeadRemainCount, false)
	tail := truncateItems(g.Tail, g.TailRemainCount, true)

	return core.Group[P]{
		Head:            head,
		Body:            g.Body,
		Tail:            tail,
		HeadRemainCount: weightSum(head),
		TailRemainCount: weightSum(tail),
	}
}

func truncateItems[P any](items []core.Item[P], target int, fromStart bool) []core.Item[P] {
	if target <= 0 {
		return nil
	}
	if fromStart {
		return truncateFromStart(items, target)
	}
	return truncateFromEnd(items, target)
}

// truncateFromStart keeps items from the front of the list (the side
// closest to the body in a tail), up to target weight.
func truncateFromStart[P any](items []core.Item[P], target int) []core.Item[P] {
	var out []core.Item[P]
	sum := 0

	for _, item := range items {
		if sum >= target {
			break
		}
		remaining := target - sum
		if item.Weight() <= remaining {
			out = append(out, item)
			sum += item.Weight()
			continue
		}
		if seg, ok := item.(core.Segment[P]); ok {
			resources := extractResourcesFromStart(seg.Resources, remaining)
			if piece, ok := collapseResources(resources); ok {
				out = append(out, piece)
			}
		}
		break
	}

	return out
}

// truncateFromEnd keeps items from the back of the list (the side closest
// to the body in a head), up to target weight.
func truncateFromEnd[P any](items []core.Item[P], target int) []core.Item[P] {
	var out []core.Item[P]
	sum := 0

	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		if sum >= target {
			break
		}
		remaining := target - sum
		if item.Weight() <= remaining {
			out = append([]core.Item[P]{item}, out...)
			sum += item.Weight()
			continue
		}
		if seg, ok := item.(core.Segment[P]); ok {
			resources := extractResourcesFromEnd(seg.Resources, remaining)
			if piece, ok := collapseResources(resources); ok {
				out = append([]core.Item[P]{piece}, out...)
			}
		}
		break
	}

	return out
}

func extractResourcesFromStart[P any](resources []core.Resource[P], target int) []core.Resource[P] {
	var out []core.Resource[P]
	sum := 0
	for _, r := range resources {
		if sum+r.Count > target {
			break
		}
		out = append(out, r)
		sum += r.Count
	}
	return out
}

func extractResourcesFromEnd[P any](resources []core.Resource[P], target int) []core.Resource[P] {
	var out []core.Resource[P]
	sum := 0
	for i := len(resources) - 1; i >= 0; i-- {
		r := resources[i]
		if sum+r.Count > target {
			break
		}
		out = append([]core.Resource[P]{r}, out...)
		sum += r.Count
	}
	return out
}

// collapseResources folds a resource slice back into an Item: a bare
// Resource when there is exactly one, a Segment otherwise. ok is false
// for an empty slice (nothing to emit).
func collapseResources[P any](resources []core.Resource[P]) (core.Item[P], bool) {
	switch len(resources) {
	case 0:
		var zero core.Item[P]
		return zero, false
	case 1:
		return resources[0], true
	default:
		sum := 0
		for _, r := range resources {
			sum += r.Count
		}
		return core.Segment[P]{Count: sum, Resources: resources}, true
	}
}
