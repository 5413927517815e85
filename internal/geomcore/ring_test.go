package geomcore

import "testing"

func mustRing(t *testing.T, pts []Point, tag IndexTag) *Ring {
	t.Helper()
	r, err := NewRing(pts, tag)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	return r
}

func octagon() []Point {
	return []Point{
		{3, 0}, {7, 0}, {10, 3}, {10, 7}, {7, 10}, {3, 10}, {0, 7}, {0, 3}, {3, 0},
	}
}

// concaveL is the ring of the segment-predicate scenario below. Despite the
// name its vertices form a convex hexagon (a square with two corners cut).
func concaveL() []Point {
	return []Point{
		{0, 0}, {4, 0}, {4, 3}, {3, 4}, {1, 4}, {0, 3}, {0, 0},
	}
}

func TestRingContainsPoint_Octagon(t *testing.T) {
	for _, strategy := range []IndexStrategy{IndexNone, IndexNatural, IndexYstripes} {
		r := mustRing(t, octagon(), ComposeIndexTag(strategy, 0))

		if got := r.ContainsPoint(Point{5, 5}, true); got != true {
			t.Errorf("[%v] (5,5) allow=true: got %v want true", strategy, got)
		}
		if got := r.ContainsPoint(Point{5, 5}, false); got != true {
			t.Errorf("[%v] (5,5) allow=false: got %v want true", strategy, got)
		}
		if got := r.ContainsPoint(Point{0, 0}, true); got != false {
			t.Errorf("[%v] (0,0) allow=true: got %v want false", strategy, got)
		}
		if got := r.ContainsPoint(Point{0, 5}, true); got != true {
			t.Errorf("[%v] (0,5) allow=true: got %v want true", strategy, got)
		}
		if got := r.ContainsPoint(Point{0, 5}, false); got != false {
			t.Errorf("[%v] (0,5) allow=false: got %v want false", strategy, got)
		}
	}
}

func TestRingConcaveL_IntersectsContainsSegment(t *testing.T) {
	r := mustRing(t, concaveL(), ComposeIndexTag(IndexNatural, 0))
	s := Segment{A: Point{2, 2}, B: Point{2, 5}}

	if got := r.IntersectsSegment(s, true); got != true {
		t.Errorf("IntersectsSegment allow=true: got %v want true", got)
	}
	if got := r.ContainsSegment(s, false); got != false {
		t.Errorf("ContainsSegment allow=false: got %v want false", got)
	}
}

func TestContainsPoint_AllowOnEdge_BoundaryInvariant(t *testing.T) {
	r := mustRing(t, octagon(), ComposeIndexTag(IndexNatural, 4))
	boundary := Point{0, 5} // on the left edge
	if !r.ContainsPoint(boundary, true) {
		t.Error("boundary point with allow=true should hit")
	}
	if r.ContainsPoint(boundary, false) {
		t.Error("boundary point with allow=false should not hit")
	}

	interior := Point{5, 5}
	if r.ContainsPoint(interior, true) != r.ContainsPoint(interior, false) {
		t.Error("interior point must agree across allow-on-edge policy")
	}

	exterior := Point{-5, -5}
	if r.ContainsPoint(exterior, true) != r.ContainsPoint(exterior, false) {
		t.Error("exterior point must agree across allow-on-edge policy")
	}
}

func TestRingMetrics_Octagon(t *testing.T) {
	r := mustRing(t, octagon(), ComposeIndexTag(IndexNone, 0))
	if !r.Convex() {
		t.Error("octagon should be convex")
	}
	if r.Area() <= 0 {
		t.Error("area should be positive")
	}
	if r.Perimeter() <= 0 {
		t.Error("perimeter should be positive")
	}
	score := r.PolsbyPopperScore()
	if score <= 0 || score > 1 {
		t.Errorf("polsby-popper score out of range: %v", score)
	}
}

func TestRingConvex_ConcaveL(t *testing.T) {
	lShape := []Point{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}, {0, 0}}
	r := mustRing(t, lShape, ComposeIndexTag(IndexNone, 0))
	if r.Convex() {
		t.Error("L shape should not be convex")
	}
}

func TestRingClosureImplicit(t *testing.T) {
	open := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}} // no explicit closing point
	r := mustRing(t, open, ComposeIndexTag(IndexNone, 0))
	if r.NumPoints() != 5 {
		t.Fatalf("expected implicit closure to add a point, got %d points", r.NumPoints())
	}
	first, _ := r.PointAt(0)
	last, _ := r.PointAt(r.NumPoints() - 1)
	if first != last {
		t.Errorf("ring not closed: first=%v last=%v", first, last)
	}
}

func TestNewRing_TooFewPoints(t *testing.T) {
	_, err := NewRing([]Point{{0, 0}, {1, 1}}, ComposeIndexTag(IndexNone, 0))
	if err == nil {
		t.Fatal("expected error for degenerate ring")
	}
}

func TestPolygonWithHole_CoversPoint(t *testing.T) {
	ext := mustRing(t, []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}, ComposeIndexTag(IndexNatural, 0))
	hole := mustRing(t, []Point{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}}, ComposeIndexTag(IndexNatural, 0))
	poly := NewPolygon(ext, []*Ring{hole})

	if poly.CoversPoint(Point{5, 5}) {
		t.Error("point in hole should not be covered")
	}
	if !poly.CoversPoint(Point{3, 5}) {
		t.Error("point outside hole, inside exterior should be covered")
	}
}

func TestPolygonZeroHoles_Aliasing(t *testing.T) {
	ext := mustRing(t, octagon(), ComposeIndexTag(IndexNone, 0))
	poly := NewPolygon(ext, nil)
	if poly.NumHoles() != 0 {
		t.Fatalf("expected 0 holes, got %d", poly.NumHoles())
	}
	if poly.Exterior() != ext {
		t.Error("zero-hole polygon should alias its exterior ring directly")
	}
}

func TestRingRingSearch_PairsIntersect(t *testing.T) {
	a := mustRing(t, []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}, ComposeIndexTag(IndexNatural, 2))
	b := mustRing(t, []Point{{5, 5}, {15, 5}, {15, 15}, {5, 15}, {5, 5}}, ComposeIndexTag(IndexNatural, 2))

	count := 0
	RingRingSearch(a, b, func(ea, eb int) bool {
		count++
		return true
	})
	if count == 0 {
		t.Error("expected at least one candidate pair for overlapping squares")
	}
}
