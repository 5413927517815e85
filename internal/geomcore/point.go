// Package geomcore implements the planar geometry kernel: points, rects,
// segments, the ring spatial index, ring/line/polygon predicates, and the
// nearest-segment iterator. It is the performance-critical core consumed by
// the public package geom; nothing here is exported outside the module.
package geomcore

import "math"

// Point is a pure value; no invariants beyond IEEE-754.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned bounding rectangle. An all-zero Rect denotes "none".
type Rect struct {
	Min, Max Point
}

// Segment is a directed edge; endpoints may coincide.
type Segment struct {
	A, B Point
}

// NoneRect returns the all-zero rect used as the "no bounds" sentinel.
func NoneRect() Rect { return Rect{} }

// IsNone reports whether r is the all-zero sentinel rect.
func (r Rect) IsNone() bool {
	return r.Min == Point{} && r.Max == Point{}
}

// RectOf returns the bounding rect of a single point.
func RectOf(p Point) Rect {
	return Rect{Min: p, Max: p}
}

// RectOfSegment returns the bounding rect of a segment.
func RectOfSegment(s Segment) Rect {
	r := RectOf(s.A)
	return r.ExpandPoint(s.B)
}

// CoversRect reports whether outer componentwise contains inner.
func CoversRect(outer, inner Rect) bool {
	return outer.Min.X <= inner.Min.X && outer.Min.Y <= inner.Min.Y &&
		inner.Max.X <= outer.Max.X && inner.Max.Y <= outer.Max.Y
}

// CoversRect is the method form of CoversRect(r, other).
func (r Rect) CoversRect(other Rect) bool { return CoversRect(r, other) }

// IntersectsRect reports whether a and b overlap on both axes (negation of
// disjointness on either axis).
func IntersectsRect(a, b Rect) bool {
	if a.Max.X < b.Min.X || b.Max.X < a.Min.X {
		return false
	}
	if a.Max.Y < b.Min.Y || b.Max.Y < a.Min.Y {
		return false
	}
	return true
}

// IntersectsRect is the method form of IntersectsRect(r, other).
func (r Rect) IntersectsRect(other Rect) bool { return IntersectsRect(r, other) }

// Expand returns the union of r and other.
func (r Rect) Expand(other Rect) Rect {
	if r.IsNone() {
		return other
	}
	if other.IsNone() {
		return r
	}
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// ExpandPoint returns r expanded to cover p.
func (r Rect) ExpandPoint(p Point) Rect {
	if r.IsNone() {
		return Rect{Min: p, Max: p}
	}
	return Rect{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Move returns r translated by (dx, dy).
func (r Rect) Move(dx, dy float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + dx, Y: r.Min.Y + dy},
		Max: Point{X: r.Max.X + dx, Y: r.Max.Y + dy},
	}
}

// DistanceRect returns the Euclidean distance between a and b, zero if they
// overlap.
func DistanceRect(a, b Rect) float64 {
	dx := 0.0
	if a.Max.X < b.Min.X {
		dx = b.Min.X - a.Max.X
	} else if b.Max.X < a.Min.X {
		dx = a.Min.X - b.Max.X
	}
	dy := 0.0
	if a.Max.Y < b.Min.Y {
		dy = b.Min.Y - a.Max.Y
	} else if b.Max.Y < a.Min.Y {
		dy = a.Min.Y - b.Max.Y
	}
	return math.Hypot(dx, dy)
}

// PointAt returns the i'th corner of r, iterating CCW starting from Min:
// 0=min, 1=(max.x,min.y), 2=max, 3=(min.x,max.y).
func (r Rect) PointAt(i int) Point {
	switch i % 4 {
	case 0:
		return r.Min
	case 1:
		return Point{X: r.Max.X, Y: r.Min.Y}
	case 2:
		return r.Max
	default:
		return Point{X: r.Min.X, Y: r.Max.Y}
	}
}

// Width returns the rect's x-extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the rect's y-extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
