package geomcore

import (
	"math"
	"sort"
)

// IndexStrategy selects how a Ring accelerates edge search.
type IndexStrategy int

const (
	// IndexNone skips index construction; Search falls back to a full
	// linear scan of the ring's edges.
	IndexNone IndexStrategy = iota
	// IndexNatural builds a bottom-up hierarchical grouped-rect index over
	// consecutive edges (an R-tree restricted to sequential edges).
	IndexNatural
	// IndexYstripes builds a horizontal-band bucket index keyed by
	// y-coordinate.
	IndexYstripes
)

// IndexTag packs a strategy and an optional spread override into a single
// integer (spec.md §6's "composed form"): the low byte carries the
// strategy, the remaining bits carry spread (0 meaning "use the process
// default").
type IndexTag int32

// ComposeIndexTag packs strategy and spread into an IndexTag. spread of 0
// means "use the process-wide default spread".
func ComposeIndexTag(strategy IndexStrategy, spread int) IndexTag {
	if spread != 0 {
		spread = ClampSpread(spread)
	}
	return IndexTag(int32(strategy) | int32(spread)<<8)
}

// Strategy extracts the strategy component of the tag.
func (t IndexTag) Strategy() IndexStrategy {
	return IndexStrategy(int32(t) & 0xFF)
}

// Spread extracts the spread component of the tag, substituting
// defaultSpread when the tag carries no override.
func (t IndexTag) Spread(defaultSpread int) int {
	s := int(int32(t) >> 8)
	if s == 0 {
		return defaultSpread
	}
	return ClampSpread(s)
}

// Index is a built ring/edge index using one of the two strategies. A nil
// *Index means "no index, scan linearly" and every search helper treats it
// that way.
type Index struct {
	strategy IndexStrategy
	natural  *naturalIndex
	ystripes *ystripesIndex
}

// Strategy reports which strategy idx uses, or IndexNone if idx is nil.
func (idx *Index) Strategy() IndexStrategy {
	if idx == nil {
		return IndexNone
	}
	return idx.strategy
}

// natOrNil returns the underlying natural index, or nil if idx is nil or not
// using the natural strategy.
func (idx *Index) natOrNil() *naturalIndex {
	if idx == nil {
		return nil
	}
	return idx.natural
}

// BuildIndex builds an index over rects (one per ring edge) using strategy
// and spread. Rings with fewer than minIndexedEdges edges, or built with
// IndexNone, get a nil index and fall back to linear scan.
func BuildIndex(rects []Rect, strategy IndexStrategy, spread int) *Index {
	if strategy == IndexNone || len(rects) < minIndexedEdges {
		return nil
	}
	switch strategy {
	case IndexNatural:
		spread = ClampSpread(spread)
		nat, err := buildNaturalIndex(rects, spread)
		if err != nil {
			// Allocation failure: fall back to un-indexed per spec.md §7.
			return nil
		}
		return &Index{strategy: IndexNatural, natural: nat}
	case IndexYstripes:
		ys, err := buildYstripesIndex(rects)
		if err != nil {
			return nil
		}
		return &Index{strategy: IndexYstripes, ystripes: ys}
	default:
		return nil
	}
}

// Search invokes visit(edgeIndex) for every edge whose rect (rects[i])
// intersects query, using idx to prune when possible. visit may return
// false to stop early; Search then returns false. The set of edges reported
// is identical across strategies (spec.md §4.2/§8): the index only narrows
// the candidates, and each candidate is reported only if its own rect
// intersects query.
func Search(idx *Index, rects []Rect, query Rect, visit func(edgeIndex int) bool) bool {
	if idx == nil {
		return linearSearch(rects, query, visit)
	}
	exact := func(i int) bool {
		if !IntersectsRect(rects[i], query) {
			return true
		}
		return visit(i)
	}
	switch idx.strategy {
	case IndexNatural:
		return idx.natural.search(query, exact)
	case IndexYstripes:
		return idx.ystripes.search(query, exact)
	default:
		return linearSearch(rects, query, visit)
	}
}

func linearSearch(rects []Rect, query Rect, visit func(int) bool) bool {
	for i, r := range rects {
		if IntersectsRect(r, query) {
			if !visit(i) {
				return false
			}
		}
	}
	return true
}

// --- Natural hierarchical index ---

type naturalIndex struct {
	spread    int
	edgeCount int
	levels    [][]Rect // levels[0] groups raw edges; the last level is the root (len 1)
}

func buildNaturalIndex(rects []Rect, spread int) (*naturalIndex, error) {
	if len(rects) == 0 {
		return &naturalIndex{spread: spread}, nil
	}
	if _, err := GetAllocator().Alloc(len(rects) * 32); err != nil {
		return nil, err
	}

	levels := make([][]Rect, 0, 4)
	cur := rects
	levels = append(levels, groupRects(cur, spread))
	for len(levels[len(levels)-1]) > 1 {
		levels = append(levels, groupRects(levels[len(levels)-1], spread))
	}
	return &naturalIndex{spread: spread, edgeCount: len(rects), levels: levels}, nil
}

func groupRects(in []Rect, spread int) []Rect {
	out := make([]Rect, 0, (len(in)+spread-1)/spread)
	for i := 0; i < len(in); i += spread {
		end := i + spread
		if end > len(in) {
			end = len(in)
		}
		var r Rect
		for _, rr := range in[i:end] {
			r = r.Expand(rr)
		}
		out = append(out, r)
	}
	return out
}

func (ni *naturalIndex) search(query Rect, visit func(int) bool) bool {
	if ni == nil || len(ni.levels) == 0 {
		return true
	}
	return ni.searchLevel(len(ni.levels)-1, 0, query, visit)
}

func (ni *naturalIndex) searchLevel(level, group int, query Rect, visit func(int) bool) bool {
	rect := ni.levels[level][group]
	if !IntersectsRect(rect, query) {
		return true
	}
	if level == 0 {
		start := group * ni.spread
		end := start + ni.spread
		n := ni.numEdges()
		if end > n {
			end = n
		}
		for e := start; e < end; e++ {
			if !visit(e) {
				return false
			}
		}
		return true
	}
	childStart := group * ni.spread
	childEnd := childStart + ni.spread
	if childEnd > len(ni.levels[level-1]) {
		childEnd = len(ni.levels[level-1])
	}
	for c := childStart; c < childEnd; c++ {
		if !ni.searchLevel(level-1, c, query, visit) {
			return false
		}
	}
	return true
}

func (ni *naturalIndex) numEdges() int {
	return ni.edgeCount
}

// --- Y-stripes index ---

type ystripesIndex struct {
	minY, maxY   float64
	stripeHeight float64
	numStripes   int
	buckets      [][]int
}

const maxYstripes = 1024

func buildYstripesIndex(rects []Rect) (*ystripesIndex, error) {
	n := len(rects)
	if n == 0 {
		return &ystripesIndex{}, nil
	}
	if _, err := GetAllocator().Alloc(n * 16); err != nil {
		return nil, err
	}

	minY, maxY := rects[0].Min.Y, rects[0].Max.Y
	for _, r := range rects[1:] {
		if r.Min.Y < minY {
			minY = r.Min.Y
		}
		if r.Max.Y > maxY {
			maxY = r.Max.Y
		}
	}

	numStripes := int(math.Sqrt(float64(n)))
	if numStripes < 1 {
		numStripes = 1
	}
	if numStripes > n {
		numStripes = n
	}
	if numStripes > maxYstripes {
		numStripes = maxYstripes
	}

	height := maxY - minY
	stripeHeight := height / float64(numStripes)
	if !(stripeHeight > 0) {
		stripeHeight = 1 // degenerate: all edges share the same y-extent
	}

	ys := &ystripesIndex{
		minY:         minY,
		maxY:         maxY,
		stripeHeight: stripeHeight,
		numStripes:   numStripes,
		buckets:      make([][]int, numStripes),
	}
	for i, r := range rects {
		s0 := ys.stripeOf(r.Min.Y)
		s1 := ys.stripeOf(r.Max.Y)
		for s := s0; s <= s1; s++ {
			ys.buckets[s] = append(ys.buckets[s], i)
		}
	}
	return ys, nil
}

func (ys *ystripesIndex) stripeOf(y float64) int {
	if ys.numStripes == 0 {
		return 0
	}
	s := int((y - ys.minY) / ys.stripeHeight)
	if s < 0 {
		s = 0
	}
	if s >= ys.numStripes {
		s = ys.numStripes - 1
	}
	return s
}

func (ys *ystripesIndex) search(query Rect, visit func(int) bool) bool {
	if ys == nil || ys.numStripes == 0 {
		return true
	}
	first := ys.stripeOf(query.Min.Y)
	last := ys.stripeOf(query.Max.Y)
	if first > last {
		first, last = last, first
	}

	var candidates []int
	for s := first; s <= last; s++ {
		candidates = append(candidates, ys.buckets[s]...)
	}
	sort.Ints(candidates)

	prev := -1
	for _, e := range candidates {
		if e == prev {
			continue
		}
		prev = e
		if !visit(e) {
			return false
		}
	}
	return true
}
