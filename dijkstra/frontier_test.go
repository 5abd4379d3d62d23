package dijkstra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrontier_PopOrderIsDistanceThenInsertion(t *testing.T) {
	f := newFrontier(4)
	require.True(t, f.upsert(0, 5))
	require.True(t, f.upsert(1, 3))
	require.True(t, f.upsert(2, 5))
	require.True(t, f.upsert(3, 3))

	var got []int
	for f.len() > 0 {
		it, ok := f.popMin()
		require.True(t, ok)
		got = append(got, it.node)
	}
	require.Equal(t, []int{1, 3, 0, 2}, got)

	_, ok := f.popMin()
	require.False(t, ok, "empty frontier pops nothing")
}

func TestFrontier_UpsertUpdatesInPlace(t *testing.T) {
	f := newFrontier(3)
	f.upsert(0, 9)
	f.upsert(1, 4)
	f.upsert(2, 4)

	// Vertex 2 drops to the same distance as 1 ...
	require.False(t, f.upsert(2, 4), "existing entry is updated, not queued")
	// ... and vertex 0 drops to 4 as well; it entered first so it now leads.
	require.False(t, f.upsert(0, 4))
	require.Equal(t, 3, f.len(), "no duplicate entries")

	ordered := f.ordered()
	require.Len(t, ordered, 3)
	require.Equal(t, []int{0, 1, 2}, []int{ordered[0].node, ordered[1].node, ordered[2].node})
	for _, it := range ordered {
		require.Equal(t, int64(4), it.dist)
	}
}

func TestFrontier_PopForgetsVertex(t *testing.T) {
	f := newFrontier(2)
	require.True(t, f.upsert(1, 7))
	_, ok := f.popMin()
	require.True(t, ok)
	require.Empty(t, f.byNode)
	require.True(t, f.upsert(1, 3), "a popped vertex is queued as a new entry")
}

func TestFrontier_OrderedDoesNotDisturbHeap(t *testing.T) {
	f := newFrontier(3)
	f.upsert(2, 1)
	f.upsert(1, 2)
	f.upsert(0, 3)

	_ = f.ordered()
	it, ok := f.popMin()
	require.True(t, ok)
	require.Equal(t, 2, it.node)
	require.Equal(t, -1, it.index, "popped items are detached from the heap")
}
