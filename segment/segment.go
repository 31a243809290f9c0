package segment

import (
	"iter"

	"github.com/katalvlaran/ressplit/core"
	"github.com/katalvlaran/ressplit/stream"
)

// treeStream is the pushback cursor collectSegment recurses over; its
// elements are resources or already-built nodes pushed back mid-recursion.
type treeStream[P any] = stream.Stream[treeItem[P]]

// Allocate consumes src and returns a lazy sequence of core.Item values:
// bare resources or flat Segment bundles, cut only where incision
// arithmetic sanctions it and bounded by maxSegmentCount wherever an
// oversize resource doesn't force a larger segment through.
//
// borderIncision seeds the recursion's floor level; pass core.Impossible
// for a plain flatten that cuts at every sanctioned boundary.
func Allocate[P any](src iter.Seq[core.Resource[P]], borderIncision core.Incision, maxSegmentCount int) (iter.Seq[core.Item[P]], error) {
	if !borderIncision.Valid() {
		return nil, core.ErrUnknownIncision
	}
	if maxSegmentCount <= 0 {
		return nil, ErrInvalidMaxSegmentCount
	}

	floor := int(borderIncision)
	if floor < core.MinLevel {
		floor = core.MinLevel
	}

	return func(yield func(core.Item[P]) bool) {
		s := stream.New(wrapResources(src))
		defer s.Close()

		// A root stops at the first boundary below floor; keep collecting
		// roots until the stream is exhausted.
		for {
			root := collectSegment(s, floor)
			if len(root.children) == 0 {
				return
			}
			for _, child := range root.children {
				if child.res != nil {
					if !yield(*child.res) {
						return
					}
					continue
				}
				for _, piece := range splitSegmentIfNeed(child.node, maxSegmentCount) {
					if !yield(flatten(piece)) {
						return
					}
				}
			}
		}
	}, nil
}

func wrapResources[P any](src iter.Seq[core.Resource[P]]) iter.Seq[treeItem[P]] {
	return func(yield func(treeItem[P]) bool) {
		for r := range src {
			if !yield(leaf(r)) {
				return
			}
		}
	}
}

// flatten converts a built node into the public Item: a bare Resource if
// it has exactly one descendant resource, otherwise a flat Segment.
func flatten[P any](n *node[P]) core.Item[P] {
	resources := deepIterSegment(n)
	if len(resources) == 1 {
		return resources[0]
	}
	return core.Segment[P]{Count: n.count, Resources: resources}
}

func deepIterSegment[P any](n *node[P]) []core.Resource[P] {
	var out []core.Resource[P]
	for _, c := range n.children {
		if c.res != nil {
			out = append(out, *c.res)
		} else {
			out = append(out, deepIterSegment(c.node)...)
		}
	}
	return out
}

// splitSegmentIfNeed bounds a node to maxSegmentCount by unfolding any
// oversize child and greedily repacking the unfolded sequence into new
// same-level nodes. A single oversize resource is never split; if it ends
// up alone in a new node, that node legitimately exceeds maxSegmentCount.
func splitSegmentIfNeed[P any](n *node[P], maxSegmentCount int) []*node[P] {
	if n.count <= maxSegmentCount {
		return []*node[P]{n}
	}

	var (
		out    []*node[P]
		buffer []treeItem[P]
		count  int
	)
	flush := func() {
		if len(buffer) == 0 {
			return
		}
		out = append(out, createNode(count, buffer, n.level))
		buffer = nil
		count = 0
	}

	for _, item := range unfoldSegments(n, maxSegmentCount) {
		if len(buffer) > 0 && count+item.weight() > maxSegmentCount {
			flush()
		}
		count += item.weight()
		buffer = append(buffer, item)
	}
	flush()

	return out
}

// unfoldSegments walks n's direct children, recursively splitting any
// child node that itself exceeds maxSegmentCount.
func unfoldSegments[P any](n *node[P], maxSegmentCount int) []treeItem[P] {
	var out []treeItem[P]
	for _, item := range n.children {
		if item.node != nil && item.node.count > maxSegmentCount {
			for _, piece := range splitSegmentIfNeed(item.node, maxSegmentCount) {
				out = append(out, branch(piece))
			}
		} else {
			out = append(out, item)
		}
	}
	return out
}

func createNode[P any](count int, children []treeItem[P], level int) *node[P] {
	return &node[P]{
		level:         level,
		count:         count,
		children:      children,
		startIncision: children[0].startIncision(),
		endIncision:   children[len(children)-1].endIncision(),
	}
}
