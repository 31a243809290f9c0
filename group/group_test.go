package group_test

import (
	"testing"

	"github.com/katalvlaran/ressplit/core"
	"github.com/katalvlaran/ressplit/group"
	"github.com/stretchr/testify/require"
)

func res(count int) core.Resource[int] { return core.Resource[int]{Count: count} }

func itemsOf(resources ...core.Resource[int]) []core.Item[int] {
	out := make([]core.Item[int], len(resources))
	for i, r := range resources {
		out[i] = r
	}
	return out
}

func collectGroups(t *testing.T, resources []core.Resource[int], maxCount int, gapRate, tailRate float64) []core.Group[int] {
	t.Helper()
	src := func(yield func(core.Item[int]) bool) {
		for _, r := range resources {
			if !yield(r) {
				return
			}
		}
	}
	seq, err := group.Items(src, maxCount, gapRate, tailRate)
	require.NoError(t, err)
	var out []core.Group[int]
	for g := range seq {
		out = append(out, g)
	}
	return out
}

// TestItemsUniformResources matches the reference suite's literal
// scenario: 5 equal-weight resources, max_count=400, gap_rate=0.25,
// tail_rate=0.5.
func TestItemsUniformResources(t *testing.T) {
	resources := []core.Resource[int]{res(100), res(100), res(100), res(100), res(100)}
	groups := collectGroups(t, resources, 400, 0.25, 0.5)

	require.Len(t, groups, 3)

	require.Empty(t, groups[0].Head)
	require.Equal(t, 0, groups[0].HeadRemainCount)
	require.Equal(t, itemsOf(resources[0], resources[1]), groups[0].Body)
	require.Equal(t, itemsOf(resources[2]), groups[0].Tail)
	require.Equal(t, 100, groups[0].TailRemainCount)

	require.Equal(t, itemsOf(resources[1]), groups[1].Head)
	require.Equal(t, 100, groups[1].HeadRemainCount)
	require.Equal(t, itemsOf(resources[2], resources[3]), groups[1].Body)
	require.Equal(t, itemsOf(resources[4]), groups[1].Tail)
	require.Equal(t, 100, groups[1].TailRemainCount)

	require.Equal(t, itemsOf(resources[3]), groups[2].Head)
	require.Equal(t, 100, groups[2].HeadRemainCount)
	require.Equal(t, itemsOf(resources[4]), groups[2].Body)
	require.Empty(t, groups[2].Tail)
	require.Equal(t, 0, groups[2].TailRemainCount)
}

// TestItemsHugeFragmentBarrier covers the case where a single body far
// exceeds bodyMax. A group whose own body overruns bodyMax gets a
// shrunken, rate-independent overlap split evenly between head and
// tail; a group whose neighbor (not itself) overruns bodyMax by no
// more than gapMax reaches fully toward that neighbor instead of
// clamping to gapMax, so the oversize fragment isn't needlessly cut
// again at the next boundary.
func TestItemsHugeFragmentBarrier(t *testing.T) {
	resources := []core.Resource[int]{res(100), res(300), res(100), res(100)}
	groups := collectGroups(t, resources, 400, 0.25, 0.5)

	require.Len(t, groups, 3)

	require.Empty(t, groups[0].Head)
	require.Equal(t, itemsOf(resources[0]), groups[0].Body)
	require.Equal(t, itemsOf(resources[1]), groups[0].Tail)
	require.Equal(t, 300, groups[0].TailRemainCount)

	require.Equal(t, itemsOf(resources[0]), groups[1].Head)
	require.Equal(t, 50, groups[1].HeadRemainCount)
	require.Equal(t, itemsOf(resources[1]), groups[1].Body)
	require.Equal(t, itemsOf(resources[2]), groups[1].Tail)
	require.Equal(t, 50, groups[1].TailRemainCount)

	require.Equal(t, itemsOf(resources[1]), groups[2].Head)
	require.Equal(t, 200, groups[2].HeadRemainCount)
	require.Equal(t, itemsOf(resources[2], resources[3]), groups[2].Body)
	require.Empty(t, groups[2].Tail)
	require.Equal(t, 0, groups[2].TailRemainCount)
}

// TestItemsDistributesBetweenHeadAndTail covers a body of exactly
// bodyMax flanked on both sides by oversize bodies: tailRate biases how
// much of the overlap budget this group's head and tail get to reach
// toward those neighbors, while the oversize groups get none.
func TestItemsDistributesBetweenHeadAndTail(t *testing.T) {
	resources := []core.Resource[int]{res(400), res(200), res(400)}
	groups := collectGroups(t, resources, 400, 0.25, 0.8)

	require.Len(t, groups, 3)

	require.Empty(t, groups[0].Head)
	require.Equal(t, itemsOf(resources[0]), groups[0].Body)
	require.Empty(t, groups[0].Tail)
	require.Equal(t, 0, groups[0].TailRemainCount)

	require.Equal(t, itemsOf(resources[0]), groups[1].Head)
	require.Equal(t, 40, groups[1].HeadRemainCount)
	require.Equal(t, itemsOf(resources[1]), groups[1].Body)
	require.Equal(t, itemsOf(resources[2]), groups[1].Tail)
	require.Equal(t, 160, groups[1].TailRemainCount)

	require.Empty(t, groups[2].Head)
	require.Equal(t, 0, groups[2].HeadRemainCount)
	require.Equal(t, itemsOf(resources[2]), groups[2].Body)
	require.Empty(t, groups[2].Tail)
	require.Equal(t, 0, groups[2].TailRemainCount)
}

// TestItemsDistributesAllToTail covers tailRate at its extreme: every
// unit of overlap budget goes to the tail side, none to the head.
func TestItemsDistributesAllToTail(t *testing.T) {
	resources := []core.Resource[int]{res(400), res(200), res(400)}
	groups := collectGroups(t, resources, 400, 0.25, 1.0)

	require.Len(t, groups, 3)

	require.Empty(t, groups[0].Head)
	require.Equal(t, itemsOf(resources[0]), groups[0].Body)
	require.Empty(t, groups[0].Tail)
	require.Equal(t, 0, groups[0].TailRemainCount)

	require.Empty(t, groups[1].Head)
	require.Equal(t, 0, groups[1].HeadRemainCount)
	require.Equal(t, itemsOf(resources[1]), groups[1].Body)
	require.Equal(t, itemsOf(resources[2]), groups[1].Tail)
	require.Equal(t, 200, groups[1].TailRemainCount)

	require.Empty(t, groups[2].Head)
	require.Equal(t, 0, groups[2].HeadRemainCount)
	require.Equal(t, itemsOf(resources[2]), groups[2].Body)
	require.Empty(t, groups[2].Tail)
	require.Equal(t, 0, groups[2].TailRemainCount)
}

func TestItemsRejectsInvalidInput(t *testing.T) {
	empty := func(yield func(core.Item[int]) bool) {}

	_, err := group.Items(empty, 0, 0.25, 0.5)
	require.ErrorIs(t, err, group.ErrInvalidMaxCount)

	_, err = group.Items(empty, 100, 0.6, 0.5)
	require.ErrorIs(t, err, group.ErrGapRateOutOfRange)

	_, err = group.Items(empty, 100, 0.25, 1.5)
	require.ErrorIs(t, err, group.ErrTailRateOutOfRange)
}

func TestItemsStopsEarlyWhenConsumerBreaks(t *testing.T) {
	resources := []core.Resource[int]{res(100), res(100), res(100), res(100), res(100)}
	src := func(yield func(core.Item[int]) bool) {
		for _, r := range resources {
			if !yield(r) {
				return
			}
		}
	}
	seq, err := group.Items(src, 400, 0.25, 0.5)
	require.NoError(t, err)

	count := 0
	for range seq {
		count++
		break
	}
	require.Equal(t, 1, count)
}
