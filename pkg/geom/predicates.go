package geom

import "github.com/beetlebugorg/spatial/internal/geomcore"

// Predicates dispatch on the variant of each operand, then reduce to the
// ring/line/polygon primitives in internal/geomcore. Per spec.md §4.6, an
// Error or Empty operand makes every predicate report its conservative
// default (false, or true for Disjoint) without propagating the error.
//
// Two dispatch trees do the reducing: dispatchIntersects ("do a and b share
// any point, boundary included") backs Intersects/Disjoint/Touches, and
// dispatchCovers ("is every point of b in a", parameterized by allowOnEdge)
// backs Covers/Contains/CoveredBy/Within. They are kept separate because,
// for polygon/polygon and line/polygon pairs, "covers" is containment, not
// an edge-policy variant of "intersects" — collapsing the two produced a
// Covers that was really just Intersects in an earlier draft.

// Intersects reports whether a and b share any point.
func Intersects(a, b *GeometryValue) bool {
	if isSafeDefault(a) || isSafeDefault(b) {
		return false
	}
	return dispatchIntersects(a, b)
}

// Disjoint is the negation of Intersects.
func Disjoint(a, b *GeometryValue) bool {
	if isSafeDefault(a) || isSafeDefault(b) {
		return true
	}
	return !dispatchIntersects(a, b)
}

// Covers reports whether every point of b is in a, boundary included.
func Covers(a, b *GeometryValue) bool {
	if isSafeDefault(a) || isSafeDefault(b) {
		return false
	}
	return dispatchCovers(a, b, true)
}

// CoveredBy is Covers with operands reversed: covers(a,b) ⇔ covered_by(b,a).
func CoveredBy(a, b *GeometryValue) bool { return Covers(b, a) }

// Contains is Covers restricted so that b's boundary may not rest on a's
// boundary: the allow_on_edge=false path already used throughout the ring
// kernel.
func Contains(a, b *GeometryValue) bool {
	if isSafeDefault(a) || isSafeDefault(b) {
		return false
	}
	return dispatchCovers(a, b, false)
}

// Within is Contains with operands reversed: contains(a,b) ⇔ within(b,a).
func Within(a, b *GeometryValue) bool { return Contains(b, a) }

// Touches reports whether a and b intersect but neither's interior meets
// the other. Exact for the point/line/polygon-as-single-ring pairs the ring
// kernel models directly; for polygon/polygon pairs "interior meets" is
// approximated as "one covers the other or they overlap", which is correct
// for the shared-boundary-only case the predicate exists to detect and
// conservative (never a false "touches") for a genuine area overlap.
func Touches(a, b *GeometryValue) bool {
	if isSafeDefault(a) || isSafeDefault(b) {
		return false
	}
	if !dispatchIntersects(a, b) {
		return false
	}
	return !dispatchCovers(a, b, false) && !dispatchCovers(b, a, false) && !Overlaps(a, b)
}

// Equals reports whether a and b are structurally equal at the point
// sequence level: same type, same points, in stored order (no reordering
// for unordered-looking kinds like MultiPoint).
func Equals(a, b *GeometryValue) bool {
	if isSafeDefault(a) || isSafeDefault(b) {
		return false
	}
	if a.TypeOf() != b.TypeOf() {
		return false
	}
	return pointsEqual(a, b)
}

// Crosses is a resolved Open Question (spec.md §9): it is implemented for
// line/line and line/polygon pairs (the only pairs where "cross" has an
// unambiguous meaning independent of orientation) and returns false for
// every other variant pair rather than stubbing the whole predicate out.
func Crosses(a, b *GeometryValue) bool {
	if isSafeDefault(a) || isSafeDefault(b) {
		return false
	}
	switch {
	case a.TypeOf() == TypeLineString && b.TypeOf() == TypeLineString:
		return linesIntersect(a.line, b.line, false)
	case a.TypeOf() == TypeLineString && b.TypeOf() == TypePolygon:
		return lineCrossesPolygon(a.line, b.poly)
	case a.TypeOf() == TypePolygon && b.TypeOf() == TypeLineString:
		return lineCrossesPolygon(b.line, a.poly)
	default:
		return false
	}
}

// Overlaps is a resolved Open Question (spec.md §9): implemented for
// polygon/polygon pairs (same-dimension partial overlap, the one case the
// predicate is unambiguous for without a full DE-9IM matrix); false for
// every other variant pair.
func Overlaps(a, b *GeometryValue) bool {
	if isSafeDefault(a) || isSafeDefault(b) {
		return false
	}
	if a.TypeOf() != TypePolygon || b.TypeOf() != TypePolygon {
		return false
	}
	if !a.poly.IntersectsPolygon(b.poly) {
		return false
	}
	if dispatchCovers(a, b, true) || dispatchCovers(b, a, true) {
		return false
	}
	return polygonsOverlapInteriors(a.poly, b.poly)
}

// polygonsOverlapInteriors reports whether two intersecting, non-covering
// polygons genuinely share area rather than merely a boundary: either some
// exterior vertex of one lies strictly inside the other, or their exterior
// boundaries cross transversally. Two polygons that only share an edge (no
// vertex strictly interior to the other, no transversal crossing) fail both
// checks and correctly report no overlap.
func polygonsOverlapInteriors(a, b geomcore.PolygonView) bool {
	if anyExteriorVertexStrictlyInside(a, b) || anyExteriorVertexStrictlyInside(b, a) {
		return true
	}
	return boundariesTransversallyCross(a, b)
}

func anyExteriorVertexStrictlyInside(p, q geomcore.PolygonView) bool {
	ext := p.Exterior()
	n := ext.NumPoints()
	for i := 0; i < n; i++ {
		pt, _ := ext.PointAt(i)
		if polygonCoversPoint(q, pt, false) {
			return true
		}
	}
	return false
}

func boundariesTransversallyCross(a, b geomcore.PolygonView) bool {
	ea, eb := a.Exterior(), b.Exterior()
	na, nb := ea.NumSegments(), eb.NumSegments()
	for i := 0; i < na; i++ {
		sa, _ := ea.SegmentAt(i)
		for j := 0; j < nb; j++ {
			sb, _ := eb.SegmentAt(j)
			if segmentsStrictlyCross(sa, sb) {
				return true
			}
		}
	}
	return false
}

// CoversXY is Covers against a bare point: it wraps (x, y) in a Point
// GeometryValue and calls Covers.
func CoversXY(g *GeometryValue, x, y float64) bool {
	return Covers(g, NewPoint(Point{X: x, Y: y}))
}

func isSafeDefault(g *GeometryValue) bool {
	return g == nil || g.TypeOf() == TypeError || g.TypeOf() == TypeEmpty
}

// --- Intersects dispatch ---

func dispatchIntersects(a, b *GeometryValue) bool {
	if isMultiKind(a) {
		return anyChild(a, func(c *GeometryValue) bool { return dispatchIntersects(c, b) })
	}
	if isMultiKind(b) {
		return anyChild(b, func(c *GeometryValue) bool { return dispatchIntersects(a, c) })
	}

	switch a.TypeOf() {
	case TypePoint:
		return intersectsFromPoint(a.point, b)
	case TypeLineString:
		return intersectsFromLine(a.line, b)
	case TypePolygon:
		return intersectsFromPolygon(a.poly, b)
	default:
		return false
	}
}

func intersectsFromPoint(p Point, b *GeometryValue) bool {
	switch b.TypeOf() {
	case TypePoint:
		return p == b.point
	case TypeLineString:
		return onLine(b.line, p)
	case TypePolygon:
		return b.poly.CoversPoint(p)
	default:
		return false
	}
}

func intersectsFromLine(l *geomcore.Line, b *GeometryValue) bool {
	switch b.TypeOf() {
	case TypePoint:
		return onLine(l, b.point)
	case TypeLineString:
		return linesIntersect(l, b.line, true)
	case TypePolygon:
		return b.poly.IntersectsLine(l)
	default:
		return false
	}
}

func intersectsFromPolygon(p geomcore.PolygonView, b *GeometryValue) bool {
	switch b.TypeOf() {
	case TypePoint:
		return p.CoversPoint(b.point)
	case TypeLineString:
		return p.IntersectsLine(b.line)
	case TypePolygon:
		return p.IntersectsPolygon(b.poly)
	default:
		return false
	}
}

// --- Covers/Contains dispatch ---

// dispatchCovers reports whether every point of b lies in a, with allowOnEdge
// controlling whether a point of b resting on a's boundary counts.
func dispatchCovers(a, b *GeometryValue, allowOnEdge bool) bool {
	if isMultiKind(a) {
		return anyChild(a, func(c *GeometryValue) bool { return dispatchCovers(c, b, allowOnEdge) })
	}
	if isMultiKind(b) {
		return allChildren(b, func(c *GeometryValue) bool { return dispatchCovers(a, c, allowOnEdge) })
	}

	switch a.TypeOf() {
	case TypePoint:
		return b.TypeOf() == TypePoint && a.point == b.point
	case TypeLineString:
		return coversFromLine(a.line, b, allowOnEdge)
	case TypePolygon:
		return coversFromPolygon(a.poly, b, allowOnEdge)
	default:
		return false
	}
}

// coversFromLine implements "a line covers b": a line has no interior
// (spec.md §4.4), so allow_on_edge is irrelevant except that a strict
// (allowOnEdge=false) cover of a bare point degenerates to false, since
// every point of a line IS its boundary.
func coversFromLine(l *geomcore.Line, b *GeometryValue, allowOnEdge bool) bool {
	switch b.TypeOf() {
	case TypePoint:
		if !allowOnEdge {
			return false
		}
		return onLine(l, b.point)
	case TypeLineString:
		return lineContainsLine(l, b.line)
	default:
		return false
	}
}

func coversFromPolygon(p geomcore.PolygonView, b *GeometryValue, allowOnEdge bool) bool {
	switch b.TypeOf() {
	case TypePoint:
		return polygonCoversPoint(p, b.point, allowOnEdge)
	case TypeLineString:
		n := b.line.NumSegments()
		for i := 0; i < n; i++ {
			s, _ := b.line.SegmentAt(i)
			if !polygonCoversSegment(p, s, allowOnEdge) {
				return false
			}
		}
		return true
	case TypePolygon:
		return polygonCoversPolygon(p, b.poly, allowOnEdge)
	default:
		return false
	}
}

// polygonCoversPoint implements polygon_covers_point generalized with an
// allowOnEdge toggle: allowOnEdge=true is exactly spec.md §4.4's
// polygon_covers_point; allowOnEdge=false additionally excludes points on
// the exterior boundary (true interior-only containment).
func polygonCoversPoint(p geomcore.PolygonView, pt Point, allowOnEdge bool) bool {
	if !p.Exterior().ContainsPoint(pt, allowOnEdge) {
		return false
	}
	for i := 0; i < p.NumHoles(); i++ {
		h, _ := p.HoleAt(i)
		if h.ContainsPoint(pt, !allowOnEdge) {
			return false
		}
	}
	return true
}

func polygonCoversSegment(p geomcore.PolygonView, s geomcore.Segment, allowOnEdge bool) bool {
	if !p.Exterior().ContainsSegment(s, allowOnEdge) {
		return false
	}
	for i := 0; i < p.NumHoles(); i++ {
		h, _ := p.HoleAt(i)
		if h.ContainsSegment(s, !allowOnEdge) {
			return false
		}
	}
	return true
}

// polygonCoversPolygon implements polygon_intersects_polygon's containment
// counterpart: p's exterior must contain inner's exterior, and none of p's
// holes may swallow inner's exterior.
func polygonCoversPolygon(p, inner geomcore.PolygonView, allowOnEdge bool) bool {
	if !p.Exterior().ContainsRing(inner.Exterior(), allowOnEdge) {
		return false
	}
	for i := 0; i < p.NumHoles(); i++ {
		h, _ := p.HoleAt(i)
		if h.ContainsRing(inner.Exterior(), !allowOnEdge) {
			return false
		}
	}
	return true
}

// --- shared helpers ---

func isMultiKind(g *GeometryValue) bool {
	switch g.TypeOf() {
	case TypeMultiPoint, TypeMultiLineString, TypeMultiPolygon, TypeGeometryCollection:
		return true
	default:
		return false
	}
}

func anyChild(g *GeometryValue, pred func(*GeometryValue) bool) bool {
	n := g.NumGeometries()
	for i := 0; i < n; i++ {
		c, err := g.GeometryAt(i)
		if err != nil {
			continue
		}
		if pred(c) {
			return true
		}
	}
	return false
}

func allChildren(g *GeometryValue, pred func(*GeometryValue) bool) bool {
	n := g.NumGeometries()
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		c, err := g.GeometryAt(i)
		if err != nil {
			return false
		}
		if !pred(c) {
			return false
		}
	}
	return true
}

func onLine(l *geomcore.Line, p Point) bool {
	n := l.NumSegments()
	for i := 0; i < n; i++ {
		s, _ := l.SegmentAt(i)
		if geomcore.Raycast(s, p) == geomcore.RaycastOn {
			return true
		}
	}
	return false
}

func linesIntersect(a, b *geomcore.Line, allowOnEdge bool) bool {
	na, nb := a.NumSegments(), b.NumSegments()
	for i := 0; i < na; i++ {
		sa, _ := a.SegmentAt(i)
		for j := 0; j < nb; j++ {
			sb, _ := b.SegmentAt(j)
			if allowOnEdge {
				if geomcore.SegmentsIntersect(sa, sb) {
					return true
				}
			} else if segmentsStrictlyCross(sa, sb) {
				return true
			}
		}
	}
	return false
}

func lineCrossesPolygon(l *geomcore.Line, p geomcore.PolygonView) bool {
	if !p.IntersectsLine(l) {
		return false
	}
	n := l.NumSegments()
	for i := 0; i < n; i++ {
		s, _ := l.SegmentAt(i)
		if !polygonCoversSegment(p, s, true) {
			return true
		}
	}
	return false
}

// segmentsStrictlyCross mirrors internal/geomcore's unexported segmentsCross
// via the exported SegmentsIntersect plus an endpoint check: a transversal
// crossing excludes any case where an endpoint of one segment lies on the
// other (shared endpoints, T-touches, and collinear overlaps).
func segmentsStrictlyCross(a, b geomcore.Segment) bool {
	if !geomcore.SegmentsIntersect(a, b) {
		return false
	}
	if geomcore.Raycast(b, a.A) == geomcore.RaycastOn || geomcore.Raycast(b, a.B) == geomcore.RaycastOn ||
		geomcore.Raycast(a, b.A) == geomcore.RaycastOn || geomcore.Raycast(a, b.B) == geomcore.RaycastOn {
		return false
	}
	return true
}

func lineContainsLine(outer, inner *geomcore.Line) bool {
	n := inner.NumSegments()
	for i := 0; i < n; i++ {
		s, _ := inner.SegmentAt(i)
		if !onLine(outer, s.A) || !onLine(outer, s.B) {
			return false
		}
	}
	return true
}

func pointsEqual(a, b *GeometryValue) bool {
	switch a.TypeOf() {
	case TypePoint:
		return a.point == b.point
	case TypeLineString:
		return sameLinePoints(a.line, b.line)
	case TypePolygon:
		return samePolygonPoints(a.poly, b.poly)
	case TypeMultiPoint:
		if len(a.multiPoints) != len(b.multiPoints) {
			return false
		}
		for i := range a.multiPoints {
			if a.multiPoints[i] != b.multiPoints[i] {
				return false
			}
		}
		return true
	case TypeMultiLineString:
		if len(a.multiLines) != len(b.multiLines) {
			return false
		}
		for i := range a.multiLines {
			if !sameLinePoints(a.multiLines[i], b.multiLines[i]) {
				return false
			}
		}
		return true
	case TypeMultiPolygon:
		if len(a.multiPolys) != len(b.multiPolys) {
			return false
		}
		for i := range a.multiPolys {
			if !samePolygonPoints(a.multiPolys[i], b.multiPolys[i]) {
				return false
			}
		}
		return true
	case TypeGeometryCollection:
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !Equals(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func sameLinePoints(a, b *geomcore.Line) bool {
	if a.NumPoints() != b.NumPoints() {
		return false
	}
	for i := 0; i < a.NumPoints(); i++ {
		pa, _ := a.PointAt(i)
		pb, _ := b.PointAt(i)
		if pa != pb {
			return false
		}
	}
	return true
}

func sameRingPoints(a, b *geomcore.Ring) bool {
	if a.NumPoints() != b.NumPoints() {
		return false
	}
	for i := 0; i < a.NumPoints(); i++ {
		pa, _ := a.PointAt(i)
		pb, _ := b.PointAt(i)
		if pa != pb {
			return false
		}
	}
	return true
}

func samePolygonPoints(a, b geomcore.PolygonView) bool {
	if !sameRingPoints(a.Exterior(), b.Exterior()) {
		return false
	}
	if a.NumHoles() != b.NumHoles() {
		return false
	}
	for i := 0; i < a.NumHoles(); i++ {
		ha, _ := a.HoleAt(i)
		hb, _ := b.HoleAt(i)
		if !sameRingPoints(ha, hb) {
			return false
		}
	}
	return true
}
