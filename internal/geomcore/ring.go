package geomcore

import "math"

// pointSeq is the storage shared by Ring (closed) and Line (open): a
// contiguous point sequence, its cached bounding rect, its edges and their
// cached rects, and an optional search index over those edges.
type pointSeq struct {
	points    []Point
	rect      Rect
	edges     []Segment
	edgeRects []Rect
	index     *Index
}

func newPointSeq(points []Point, tag IndexTag) *pointSeq {
	n := len(points) - 1
	edges := make([]Segment, n)
	edgeRects := make([]Rect, n)
	var rect Rect
	for _, p := range points {
		rect = rect.ExpandPoint(p)
	}
	for i := 0; i < n; i++ {
		s := Segment{A: points[i], B: points[i+1]}
		edges[i] = s
		edgeRects[i] = RectOfSegment(s)
	}

	strategy := tag.Strategy()
	spread := tag.Spread(GetIndexSpread())

	var idx *Index
	if len(edges) > 0 {
		idx = BuildIndex(edgeRects, strategy, spread)
	}

	return &pointSeq{
		points:    points,
		rect:      rect,
		edges:     edges,
		edgeRects: edgeRects,
		index:     idx,
	}
}

// NumPoints returns the number of stored points.
func (s *pointSeq) NumPoints() int { return len(s.points) }

// NumSegments returns the number of edges.
func (s *pointSeq) NumSegments() int { return len(s.edges) }

// PointAt returns the i'th stored point.
func (s *pointSeq) PointAt(i int) (Point, error) {
	if i < 0 || i >= len(s.points) {
		return Point{}, &ErrIndexOutOfRange{Index: i, Len: len(s.points)}
	}
	return s.points[i], nil
}

// SegmentAt returns the i'th edge.
func (s *pointSeq) SegmentAt(i int) (Segment, error) {
	if i < 0 || i >= len(s.edges) {
		return Segment{}, &ErrIndexOutOfRange{Index: i, Len: len(s.edges)}
	}
	return s.edges[i], nil
}

// Rect returns the cached bounding rect.
func (s *pointSeq) Rect() Rect { return s.rect }

// search invokes visit(edgeIndex) for every edge whose rect intersects query.
func (s *pointSeq) search(query Rect, visit func(int) bool) bool {
	return Search(s.index, s.edgeRects, query, visit)
}

// Ring is a closed planar polyline: points[0] == points[len-1]. Immutable
// after construction; convexity and winding are computed once and cached.
type Ring struct {
	seq       *pointSeq
	convex    bool
	clockwise bool
	area      float64 // signed; negative => clockwise under our convention
}

// NewRing closes pts if necessary (appending pts[0] when pts[0] != pts[n-1])
// and builds a Ring. Requires at least 3 positions after closure, not
// counting the closing point; the positions are not checked for being
// distinct.
func NewRing(pts []Point, tag IndexTag) (*Ring, error) {
	if len(pts) == 0 {
		return nil, &ErrTooFewPoints{Kind: "ring", Got: 0, Want: 3}
	}
	full := pts
	if pts[0] != pts[len(pts)-1] {
		full = make([]Point, len(pts)+1)
		copy(full, pts)
		full[len(pts)] = pts[0]
	}
	distinct := len(full) - 1
	if distinct < 3 {
		return nil, &ErrTooFewPoints{Kind: "ring", Got: distinct, Want: 3}
	}

	seq := newPointSeq(full, tag)
	signedArea := shoelace(full)
	return &Ring{
		seq:       seq,
		convex:    isConvex(full),
		clockwise: signedArea < 0,
		area:      signedArea,
	}, nil
}

func shoelace(full []Point) float64 {
	n := len(full) - 1
	sum := 0.0
	for i := 0; i < n; i++ {
		a, b := full[i], full[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func isConvex(full []Point) bool {
	n := len(full) - 1
	if n < 3 {
		return false
	}
	gotSign := 0
	for i := 0; i < n; i++ {
		a, b, c := full[i], full[(i+1)%n], full[(i+2)%n]
		s := sign(orientation(a, b, c))
		if s == 0 {
			continue
		}
		if gotSign == 0 {
			gotSign = s
		} else if s != gotSign {
			return false
		}
	}
	return true
}

func (r *Ring) NumPoints() int                      { return r.seq.NumPoints() }
func (r *Ring) NumSegments() int                     { return r.seq.NumSegments() }
func (r *Ring) PointAt(i int) (Point, error)         { return r.seq.PointAt(i) }
func (r *Ring) SegmentAt(i int) (Segment, error)     { return r.seq.SegmentAt(i) }
func (r *Ring) Rect() Rect                           { return r.seq.Rect() }
func (r *Ring) Convex() bool                         { return r.convex }
func (r *Ring) Clockwise() bool                      { return r.clockwise }
func (r *Ring) IndexStrategy() IndexStrategy         { return r.seq.index.Strategy() }

// Area returns the unsigned shoelace area.
func (r *Ring) Area() float64 { return math.Abs(r.area) }

// Perimeter returns the sum of edge lengths.
func (r *Ring) Perimeter() float64 {
	total := 0.0
	for _, e := range r.seq.edges {
		total += math.Hypot(e.B.X-e.A.X, e.B.Y-e.A.Y)
	}
	return total
}

// PolsbyPopperScore returns 4*pi*area/perimeter^2, in [0,1] for simple
// shapes, 1 for a perfect disk. Returns 0 for a degenerate (zero-perimeter)
// ring.
func (r *Ring) PolsbyPopperScore() float64 {
	p := r.Perimeter()
	if p == 0 {
		return 0
	}
	return 4 * math.Pi * r.Area() / (p * p)
}

// Search invokes visit(edgeIndex) for every edge of r whose rect intersects
// query; visit may return false to stop early.
func (r *Ring) Search(query Rect, visit func(int) bool) bool {
	return r.seq.search(query, visit)
}

// raycastStripRect returns a horizontal strip unbounded in X: only the
// Y-range pruning matters for a raycast query.
func raycastStripRect(p Point) Rect {
	return Rect{
		Min: Point{X: math.Inf(-1), Y: p.Y},
		Max: Point{X: math.Inf(1), Y: p.Y},
	}
}

// ContainsPoint implements point-in-ring by counting raycasts across edges
// reported by Search over a horizontal strip at p.Y. If any edge reports ON
// and allowOnEdge is false, the point is not-hit regardless of parity;
// if allowOnEdge is true an ON edge means hit. Otherwise hit iff the IN
// parity is odd.
func (r *Ring) ContainsPoint(p Point, allowOnEdge bool) bool {
	query := raycastStripRect(p)
	inCount := 0
	sawOn := false
	r.seq.search(query, func(i int) bool {
		switch Raycast(r.seq.edges[i], p) {
		case RaycastOn:
			sawOn = true
			if !allowOnEdge {
				return false
			}
		case RaycastIn:
			inCount++
		}
		return true
	})
	if sawOn {
		return allowOnEdge
	}
	return inCount%2 == 1
}

// segmentsCross reports a genuine transversal crossing: both segments
// straddle each other's line, excluding touches, collinear overlaps, and
// shared endpoints.
func segmentsCross(a, b Segment) bool {
	d1 := sign(orientation(b.A, b.B, a.A))
	d2 := sign(orientation(b.A, b.B, a.B))
	d3 := sign(orientation(a.A, a.B, b.A))
	d4 := sign(orientation(a.A, a.B, b.B))
	return d1 != 0 && d2 != 0 && d3 != 0 && d4 != 0 && d1 != d2 && d3 != d4
}

// collinearOverlap reports whether segments a and b are collinear and their
// projections onto b's direction overlap by any nonzero or zero-length
// amount (i.e. a lies on the infinite line through b and touches or
// overlaps b's own extent).
func collinearOverlap(a, b Segment) bool {
	if sign(orientation(b.A, b.B, a.A)) != 0 || sign(orientation(b.A, b.B, a.B)) != 0 {
		return false
	}
	dir := Point{X: b.B.X - b.A.X, Y: b.B.Y - b.A.Y}
	lenSq := dir.X*dir.X + dir.Y*dir.Y
	if lenSq == 0 {
		return a.A == b.A && a.B == b.A
	}
	proj := func(p Point) float64 {
		return ((p.X-b.A.X)*dir.X + (p.Y-b.A.Y)*dir.Y) / lenSq
	}
	ta0, ta1 := proj(a.A), proj(a.B)
	if ta0 > ta1 {
		ta0, ta1 = ta1, ta0
	}
	return ta1 >= -epsilon && ta0 <= 1+epsilon
}

// IntersectsSegment reports whether s intersects any edge of r. With
// allowOnEdge false, pure edge-touches (no transversal crossing) are
// excluded; an endpoint of s strictly inside r still counts.
func (r *Ring) IntersectsSegment(s Segment, allowOnEdge bool) bool {
	found := false
	r.seq.search(RectOfSegment(s), func(i int) bool {
		e := r.seq.edges[i]
		if allowOnEdge {
			if SegmentsIntersect(s, e) {
				found = true
				return false
			}
		} else if segmentsCross(s, e) {
			found = true
			return false
		}
		return true
	})
	if found {
		return true
	}
	return r.ContainsPoint(s.A, false) || r.ContainsPoint(s.B, false)
}

// ContainsSegment reports whether both endpoints of s are covered by r and
// no edge of r crosses s. With allowOnEdge false, s additionally must not
// lie on any edge.
func (r *Ring) ContainsSegment(s Segment, allowOnEdge bool) bool {
	if !r.ContainsPoint(s.A, true) || !r.ContainsPoint(s.B, true) {
		return false
	}
	crossed := false
	liesOnEdge := false
	r.seq.search(RectOfSegment(s), func(i int) bool {
		e := r.seq.edges[i]
		if segmentsCross(s, e) {
			crossed = true
			return false
		}
		if !allowOnEdge && collinearOverlap(s, e) {
			liesOnEdge = true
			return false
		}
		return true
	})
	if crossed {
		return false
	}
	if !allowOnEdge && liesOnEdge {
		return false
	}
	return true
}

// ContainsRing reports whether r contains inner: every edge of inner must be
// contained by r.
func (r *Ring) ContainsRing(inner *Ring, allowOnEdge bool) bool {
	for _, e := range inner.seq.edges {
		if !r.ContainsSegment(e, allowOnEdge) {
			return false
		}
	}
	return true
}

// IntersectsRing reports whether r intersects inner: at least one edge of
// inner intersects r.
func (r *Ring) IntersectsRing(other *Ring, allowOnEdge bool) bool {
	for _, e := range other.seq.edges {
		if r.IntersectsSegment(e, allowOnEdge) {
			return true
		}
	}
	return false
}

// ContainsLine reports whether every edge of l is contained by r.
func (r *Ring) ContainsLine(l *Line, allowOnEdge bool) bool {
	for _, e := range l.seq.edges {
		if !r.ContainsSegment(e, allowOnEdge) {
			return false
		}
	}
	return true
}

// IntersectsLine reports whether any edge of l intersects r.
func (r *Ring) IntersectsLine(l *Line, allowOnEdge bool) bool {
	for _, e := range l.seq.edges {
		if r.IntersectsSegment(e, allowOnEdge) {
			return true
		}
	}
	return false
}

// RingRingSearch performs a joint traversal of a's and b's indices, invoking
// visit(edgeA, edgeB) for every pair of edges whose rects intersect. visit
// may return false to stop early.
func RingRingSearch(a, b *Ring, visit func(edgeA, edgeB int) bool) bool {
	return a.seq.search(b.seq.Rect(), func(ea int) bool {
		eRect := a.seq.edgeRects[ea]
		return b.seq.search(eRect, func(eb int) bool {
			return visit(ea, eb)
		})
	})
}
