package geom

import (
	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/spatial/internal/geomcore"
)

// multiIndexThreshold is the child count at or above which a multi-geometry
// or collection builds a secondary Multi-Index (component F) instead of
// falling back to a linear scan of NumGeometries().
const multiIndexThreshold = 32

// MultiIndex is the second-level hierarchical index over a multi-geometry
// or collection's children's bounding rects, wrapping rtreego.Rtree exactly
// as the teacher's ChartIndex wraps it over chart bounds.
type MultiIndex struct {
	tree *rtreego.Rtree
}

type childSpatial struct {
	idx  int
	rect rtreego.Rect
}

func (c childSpatial) Bounds() rtreego.Rect { return c.rect }

// rtreeRect converts a geomcore.Rect to an rtreego.Rect, nudging degenerate
// (zero-width or zero-height) extents by a tiny epsilon since rtreego
// requires strictly positive side lengths.
func rtreeRect(r geomcore.Rect) (rtreego.Rect, error) {
	const nudge = 1e-9
	w := r.Width()
	if w <= 0 {
		w = nudge
	}
	h := r.Height()
	if h <= 0 {
		h = nudge
	}
	return rtreego.NewRect(rtreego.Point{r.Min.X, r.Min.Y}, []float64{w, h})
}

// buildMultiIndex builds a Multi-Index over g's children when there are
// enough of them to be worth it; otherwise returns nil (callers fall back to
// a linear scan, mirroring internal/geomcore's un-indexed ring path).
func buildMultiIndex(g *GeometryValue) *MultiIndex {
	n := g.NumGeometries()
	if n < multiIndexThreshold {
		return nil
	}
	tree := rtreego.NewTree(2, 25, 50)
	for i := 0; i < n; i++ {
		child, err := g.GeometryAt(i)
		if err != nil {
			continue
		}
		rect, err := rtreeRect(child.FullRect())
		if err != nil {
			continue
		}
		tree.Insert(childSpatial{idx: i, rect: rect})
	}
	return &MultiIndex{tree: tree}
}

// SearchGeom invokes visit(childIndex) for every child of g whose bounding
// rect intersects query, using g's Multi-Index when present and falling
// back to a linear scan of all children otherwise. visit may return false
// to stop early. The reported set is identical either way (spec.md §8): a
// child is reported iff rect(child) ∩ query ≠ ∅.
func SearchGeom(g *GeometryValue, query geomcore.Rect, visit func(childIndex int) bool) {
	n := g.NumGeometries()
	if g.index == nil {
		for i := 0; i < n; i++ {
			child, err := g.GeometryAt(i)
			if err != nil {
				continue
			}
			if geomcore.IntersectsRect(child.FullRect(), query) {
				if !visit(i) {
					return
				}
			}
		}
		return
	}

	// rtreego does not count rects that only touch as intersecting, so the
	// tree is queried with a slightly grown rect and each candidate is then
	// checked against the exact query.
	const grow = 1e-9
	grown := geomcore.Rect{
		Min: Point{X: query.Min.X - grow, Y: query.Min.Y - grow},
		Max: Point{X: query.Max.X + grow, Y: query.Max.Y + grow},
	}
	qRect, err := rtreeRect(grown)
	if err != nil {
		return
	}
	for _, sp := range g.index.tree.SearchIntersect(qRect) {
		cs := sp.(childSpatial)
		child, err := g.GeometryAt(cs.idx)
		if err != nil || !geomcore.IntersectsRect(child.FullRect(), query) {
			continue
		}
		if !visit(cs.idx) {
			return
		}
	}
}
