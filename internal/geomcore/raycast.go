package geomcore

import "math"

// RaycastResult is the outcome of testing a point against a segment with a
// horizontal ray cast leftward from (+inf, p.Y).
type RaycastResult int

const (
	// RaycastOut means the point is strictly outside (the ray does not cross
	// the segment, and the point is not on it).
	RaycastOut RaycastResult = iota
	// RaycastIn means the ray crosses the segment an odd number of times so
	// far (the segment counts toward inside-ness).
	RaycastIn
	// RaycastOn means the point lies on the closed segment.
	RaycastOn
)

const epsilon = 1e-12

// Raycast tests point p against segment s. ON iff p lies on the closed
// segment. IN iff a horizontal ray from (+inf, p.Y) leftward crosses s,
// using half-open edge discipline at shared vertices: of two edges sharing a
// vertex at height p.Y, exactly one counts as a crossing. OUT otherwise.
func Raycast(s Segment, p Point) RaycastResult {
	if onSegment(s, p) {
		return RaycastOn
	}

	ay, by := s.A.Y, s.B.Y
	// Half-open discipline: edge counts toward parity only if exactly one
	// endpoint is strictly above p.Y (the other is at or below).
	if (ay > p.Y) == (by > p.Y) {
		return RaycastOut
	}

	// x-coordinate where the segment crosses the horizontal line y=p.Y.
	t := (p.Y - ay) / (by - ay)
	xCross := s.A.X + t*(s.B.X-s.A.X)
	if xCross > p.X {
		return RaycastIn
	}
	return RaycastOut
}

// onSegment reports whether p lies on the closed segment s, within epsilon.
func onSegment(s Segment, p Point) bool {
	// Collinearity via cross product, then bounds check via dot product.
	cross := (s.B.X-s.A.X)*(p.Y-s.A.Y) - (s.B.Y-s.A.Y)*(p.X-s.A.X)
	segLen := math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y)
	if segLen == 0 {
		return p == s.A
	}
	if math.Abs(cross)/segLen > epsilon {
		return false
	}
	dot := (p.X-s.A.X)*(s.B.X-s.A.X) + (p.Y-s.A.Y)*(s.B.Y-s.A.Y)
	if dot < -epsilon {
		return false
	}
	lenSq := segLen * segLen
	return dot <= lenSq+epsilon
}

// orientation returns the sign of the cross product (b-a) x (c-a):
// >0 counter-clockwise, <0 clockwise, 0 collinear.
func orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func sign(v float64) int {
	switch {
	case v > epsilon:
		return 1
	case v < -epsilon:
		return -1
	default:
		return 0
	}
}

// SegmentsIntersect reports whether the closed segments a and b share any
// point, handling all reflected configurations including collinear overlap
// and T-touches.
func SegmentsIntersect(a, b Segment) bool {
	d1 := sign(orientation(b.A, b.B, a.A))
	d2 := sign(orientation(b.A, b.B, a.B))
	d3 := sign(orientation(a.A, a.B, b.A))
	d4 := sign(orientation(a.A, a.B, b.B))

	if d1 != d2 && d3 != d4 {
		return true
	}

	// Collinear special cases: an endpoint of one segment lies on the other.
	if d1 == 0 && onSegment(b, a.A) {
		return true
	}
	if d2 == 0 && onSegment(b, a.B) {
		return true
	}
	if d3 == 0 && onSegment(a, b.A) {
		return true
	}
	if d4 == 0 && onSegment(a, b.B) {
		return true
	}
	return false
}

// SegmentCoversRect reports whether r is covered by s; only possible for a
// degenerate (point or zero-width/height) rect all of whose distinct corners
// lie on s, since a segment has no interior to cover a rect with any area.
func SegmentCoversRect(s Segment, r Rect) bool {
	seen := make(map[Point]bool, 4)
	for i := 0; i < 4; i++ {
		p := r.PointAt(i)
		if seen[p] {
			continue
		}
		seen[p] = true
		if !onSegment(s, p) {
			return false
		}
	}
	return true
}

// SegmentIntersectsRect reports whether s intersects r via Cohen-Sutherland
// style clipping against each edge of r.
func SegmentIntersectsRect(s Segment, r Rect) bool {
	if IntersectsRect(RectOfSegment(s), r) {
		// Quick accept: either endpoint inside, or crosses one of the 4 edges.
		if pointInRect(r, s.A) || pointInRect(r, s.B) {
			return true
		}
		edges := [4]Segment{
			{A: r.PointAt(0), B: r.PointAt(1)},
			{A: r.PointAt(1), B: r.PointAt(2)},
			{A: r.PointAt(2), B: r.PointAt(3)},
			{A: r.PointAt(3), B: r.PointAt(0)},
		}
		for _, e := range edges {
			if SegmentsIntersect(s, e) {
				return true
			}
		}
	}
	return false
}

func pointInRect(r Rect, p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
