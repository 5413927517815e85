package geomcore

import (
	"container/heap"
	"sort"
)

// NearestSegment visits r's edges in non-decreasing order of segDist, using
// r's natural index for pruning when one is present. It is a best-first
// traversal: a priority queue ordered by rectDist on index nodes and
// segDist on leaves. visit(seg, dist, index) may return false to stop.
// Returns true on normal completion (including early stop via visit), false
// if the process allocator fails the single request made before traversal
// starts; the allocator is not consulted again during the traversal.
//
// The spec's caller-supplied "more" counter hint (an amortization hint for
// the priority queue) is not needed for correctness and is omitted; callers
// only need rectDist/segDist to be consistent lower bounds.
func NearestSegment(r *Ring, rectDist func(Rect) float64, segDist func(Segment) float64, visit func(seg Segment, dist float64, index int) bool) bool {
	if _, err := GetAllocator().Alloc(64); err != nil {
		return false
	}

	ni := r.seq.index.natOrNil()
	if ni == nil || len(ni.levels) == 0 {
		return nearestLinear(r, segDist, visit)
	}

	pq := &nearestQueue{}
	heap.Init(pq)
	rootLevel := len(ni.levels) - 1
	heap.Push(pq, nearestItem{
		isLeaf:   false,
		level:    rootLevel,
		group:    0,
		priority: rectDist(ni.levels[rootLevel][0]),
	})

	for pq.Len() > 0 {
		top := heap.Pop(pq).(nearestItem)
		if top.isLeaf {
			e := r.seq.edges[top.edgeIndex]
			if !visit(e, top.priority, top.edgeIndex) {
				return true
			}
			continue
		}
		if top.level == 0 {
			start := top.group * ni.spread
			end := start + ni.spread
			if end > ni.edgeCount {
				end = ni.edgeCount
			}
			for e := start; e < end; e++ {
				heap.Push(pq, nearestItem{isLeaf: true, edgeIndex: e, priority: segDist(r.seq.edges[e])})
			}
			continue
		}
		childStart := top.group * ni.spread
		childEnd := childStart + ni.spread
		if childEnd > len(ni.levels[top.level-1]) {
			childEnd = len(ni.levels[top.level-1])
		}
		for c := childStart; c < childEnd; c++ {
			rect := ni.levels[top.level-1][c]
			heap.Push(pq, nearestItem{isLeaf: false, level: top.level - 1, group: c, priority: rectDist(rect)})
		}
	}
	return true
}

func nearestLinear(r *Ring, segDist func(Segment) float64, visit func(Segment, float64, int) bool) bool {
	type scored struct {
		idx  int
		dist float64
	}
	all := make([]scored, len(r.seq.edges))
	for i, e := range r.seq.edges {
		all[i] = scored{idx: i, dist: segDist(e)}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].dist < all[j].dist })
	for _, s := range all {
		if !visit(r.seq.edges[s.idx], s.dist, s.idx) {
			return true
		}
	}
	return true
}

type nearestItem struct {
	isLeaf    bool
	level     int
	group     int
	edgeIndex int
	priority  float64
}

type nearestQueue []nearestItem

func (q nearestQueue) Len() int            { return len(q) }
func (q nearestQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q nearestQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nearestQueue) Push(x interface{}) { *q = append(*q, x.(nearestItem)) }
func (q *nearestQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
