package segment

import "github.com/katalvlaran/ressplit/core"

// treeItem is one child slot while the tree is under construction: either
// a leaf resource or a nested node. Exactly one field is non-nil.
type treeItem[P any] struct {
	res  *core.Resource[P]
	node *node[P]
}

func leaf[P any](r core.Resource[P]) treeItem[P] { return treeItem[P]{res: &r} }
func branch[P any](n *node[P]) treeItem[P]       { return treeItem[P]{node: n} }

func (t treeItem[P]) weight() int {
	if t.res != nil {
		return t.res.Count
	}
	return t.node.count
}

func (t treeItem[P]) startIncision() core.Incision {
	if t.res != nil {
		return t.res.StartIncision
	}
	return t.node.startIncision
}

func (t treeItem[P]) endIncision() core.Incision {
	if t.res != nil {
		return t.res.EndIncision
	}
	return t.node.endIncision
}

// node is the private recursive tree node built by collectSegment. It is
// never exposed outside this package; flatten converts it to core.Segment
// or a bare core.Resource.
type node[P any] struct {
	level         int
	count         int
	startIncision core.Incision
	endIncision   core.Incision
	children      []treeItem[P]
}

// collectSegment pulls from s until a boundary strictly below floorLevel
// is found (or the stream is exhausted), appending items across a boundary
// equal to floorLevel as siblings and recursing into any boundary strictly
// above floorLevel so that tighter-bound runs nest inside looser ones.
//
// Mirrors the source's collect(stream, floor_level) exactly, including the
// documented quirk: on a below-floor boundary, the node's end_incision is
// taken from the pushed-back resource even though that resource is not
// one of the node's children.
func collectSegment[P any](s *treeStream[P], floorLevel int) *node[P] {
	n := &node[P]{
		level:         floorLevel,
		startIncision: core.Impossible,
		endIncision:   core.Impossible,
	}

	for {
		item, ok := s.Get()
		if !ok {
			break
		}
		if len(n.children) == 0 {
			n.startIncision = item.startIncision()
			n.children = append(n.children, item)
			continue
		}

		prev := n.children[len(n.children)-1]
		lvl := core.Level(prev.endIncision(), item.startIncision())

		switch {
		case lvl < floorLevel:
			s.Recover(item)
			n.endIncision = item.endIncision()
			goto done
		case lvl > floorLevel:
			s.Recover(item)
			s.Recover(prev)
			child := collectSegment(s, lvl)
			n.children[len(n.children)-1] = branch(child)
		default:
			n.children = append(n.children, item)
		}
	}

done:
	for _, c := range n.children {
		n.count += c.weight()
	}
	return n
}
