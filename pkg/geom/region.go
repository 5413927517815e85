package geom

import "github.com/beetlebugorg/spatial/internal/geomcore"

// FilterCovering returns the subset of geoms covered by region (allow_on_edge
// semantics: boundary-touching geometries count), grounded on the teacher's
// LoadRegion/ChartIndex.Query "filter a collection down to what matters for
// a bounds" shape, stripped of any file discovery since construction is out
// of this package's scope.
func FilterCovering(geoms []*GeometryValue, region *GeometryValue) []*GeometryValue {
	var out []*GeometryValue
	for _, g := range geoms {
		if Covers(region, g) {
			out = append(out, g)
		}
	}
	return out
}

// FilterIntersecting returns the subset of geoms that intersect region.
func FilterIntersecting(geoms []*GeometryValue, region *GeometryValue) []*GeometryValue {
	var out []*GeometryValue
	for _, g := range geoms {
		if Intersects(region, g) {
			out = append(out, g)
		}
	}
	return out
}

// FilterIntersectingRect is the bare-rect form of FilterIntersecting, useful
// when the caller already has a bounds rect and doesn't want to allocate a
// polygon GeometryValue just to test it.
func FilterIntersectingRect(geoms []*GeometryValue, rect geomcore.Rect) []*GeometryValue {
	var out []*GeometryValue
	for _, g := range geoms {
		if geomcore.IntersectsRect(g.FullRect(), rect) {
			out = append(out, g)
		}
	}
	return out
}
