package geomcore

import "math"

// Line is an open planar polyline. It shares storage layout and index
// representation with Ring but is semantically open: first and last points
// are not forced equal, and convexity/winding are not computed.
type Line struct {
	seq *pointSeq
}

// NewLine builds a Line from pts. Requires at least 2 points.
func NewLine(pts []Point, tag IndexTag) (*Line, error) {
	if len(pts) < 2 {
		return nil, &ErrTooFewPoints{Kind: "line", Got: len(pts), Want: 2}
	}
	return &Line{seq: newPointSeq(pts, tag)}, nil
}

func (l *Line) NumPoints() int                  { return l.seq.NumPoints() }
func (l *Line) NumSegments() int                 { return l.seq.NumSegments() }
func (l *Line) PointAt(i int) (Point, error)     { return l.seq.PointAt(i) }
func (l *Line) SegmentAt(i int) (Segment, error) { return l.seq.SegmentAt(i) }
func (l *Line) Rect() Rect                       { return l.seq.Rect() }
func (l *Line) IndexStrategy() IndexStrategy     { return l.seq.index.Strategy() }

// Length returns the sum of the line's segment lengths.
func (l *Line) Length() float64 {
	total := 0.0
	for _, e := range l.seq.edges {
		total += math.Hypot(e.B.X-e.A.X, e.B.Y-e.A.Y)
	}
	return total
}
