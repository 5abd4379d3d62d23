package dijkstra

import (
	"cmp"
	"container/heap"
	"slices"
)

// frontierItem is one open-set candidate.
//
// seq is the insertion rank; an in-place decrease keeps it, so among equal
// distances the vertex that entered the frontier first is chosen first.
type frontierItem struct {
	node  int   // dense vertex index
	dist  int64 // tentative distance
	seq   uint64
	index int // position inside frontierHeap, maintained by Swap
}

// frontierHeap is a min-heap of *frontierItem ordered by (dist, seq).
type frontierHeap []*frontierItem

// Len returns the number of items in the heap.
func (h frontierHeap) Len() int { return len(h) }

// Less orders by distance, then by insertion rank.
func (h frontierHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements and keeps their index fields in sync.
func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push adds x onto the heap. Called by heap.Push; x must be *frontierItem.
func (h *frontierHeap) Push(x any) {
	it := x.(*frontierItem)
	it.index = len(*h)
	*h = append(*h, it)
}

// Pop removes the last element. Called by heap.Pop.
func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]

	return it
}

// frontier is the open set: a heap for ordering plus a vertex → item map so
// that "update in place or insert" is O(log V) and duplicates are impossible.
type frontier struct {
	items  frontierHeap
	byNode map[int]*frontierItem
	seq    uint64
}

func newFrontier(capacity int) *frontier {
	return &frontier{
		items:  make(frontierHeap, 0, capacity),
		byNode: make(map[int]*frontierItem, capacity),
	}
}

// upsert sets the tentative distance of node. It reports true when a new
// entry was queued and false when an existing one was updated in place.
func (f *frontier) upsert(node int, dist int64) bool {
	if it, ok := f.byNode[node]; ok {
		it.dist = dist
		heap.Fix(&f.items, it.index)

		return false
	}

	it := &frontierItem{node: node, dist: dist, seq: f.seq}
	f.seq++
	f.byNode[node] = it
	heap.Push(&f.items, it)

	return true
}

// popMin removes and returns the entry with the smallest (dist, seq).
func (f *frontier) popMin() (frontierItem, bool) {
	if len(f.items) == 0 {
		return frontierItem{}, false
	}
	it := heap.Pop(&f.items).(*frontierItem)
	delete(f.byNode, it.node)

	return *it, true
}

func (f *frontier) len() int { return len(f.items) }

// ordered returns a copy of the entries in selection order.
func (f *frontier) ordered() []frontierItem {
	out := make([]frontierItem, len(f.items))
	for i, it := range f.items {
		out[i] = *it
	}
	slices.SortFunc(out, func(a, b frontierItem) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}

		return cmp.Compare(a.seq, b.seq)
	})

	return out
}
