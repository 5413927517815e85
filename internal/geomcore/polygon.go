package geomcore

// PolygonView is the polygon-as-ring aliasing contract from spec.md §4.4/§9:
// a zero-hole polygon is a view over its exterior ring's own storage, while
// a hole-bearing polygon allocates a separate composite. Both satisfy the
// same interface so callers never need to branch on which one they hold.
type PolygonView interface {
	Exterior() *Ring
	NumHoles() int
	HoleAt(i int) (*Ring, error)
	Rect() Rect
	CoversPoint(p Point) bool
	IntersectsLine(l *Line) bool
	IntersectsPolygon(other PolygonView) bool
}

// ringView is the zero-hole implementation: a polygon backed directly by its
// exterior ring, with no separate allocation.
type ringView struct {
	exterior *Ring
}

func (v *ringView) Exterior() *Ring         { return v.exterior }
func (v *ringView) NumHoles() int           { return 0 }
func (v *ringView) Rect() Rect              { return v.exterior.Rect() }

func (v *ringView) HoleAt(i int) (*Ring, error) {
	return nil, &ErrIndexOutOfRange{Index: i, Len: 0}
}

// CoversPoint implements polygon_covers_point for a zero-hole polygon: the
// exterior ring's cover (allow_on_edge=true) is the whole contract since
// there are no holes to exclude.
func (v *ringView) CoversPoint(p Point) bool {
	return v.exterior.ContainsPoint(p, true)
}

func (v *ringView) IntersectsLine(l *Line) bool {
	return v.exterior.IntersectsLine(l, true)
}

func (v *ringView) IntersectsPolygon(other PolygonView) bool {
	return polygonIntersectsPolygon(v, other)
}

// compositeView is the hole-bearing implementation.
type compositeView struct {
	exterior *Ring
	holes    []*Ring
}

func (v *compositeView) Exterior() *Ring { return v.exterior }
func (v *compositeView) NumHoles() int   { return len(v.holes) }
func (v *compositeView) Rect() Rect      { return v.exterior.Rect() }

func (v *compositeView) HoleAt(i int) (*Ring, error) {
	if i < 0 || i >= len(v.holes) {
		return nil, &ErrIndexOutOfRange{Index: i, Len: len(v.holes)}
	}
	return v.holes[i], nil
}

// CoversPoint implements polygon_covers_point(p, q) = exterior.contains(q,
// allow_on_edge=true) AND no hole strictly contains q (allow_on_edge=false).
func (v *compositeView) CoversPoint(p Point) bool {
	if !v.exterior.ContainsPoint(p, true) {
		return false
	}
	for _, h := range v.holes {
		if h.ContainsPoint(p, false) {
			return false
		}
	}
	return true
}

// IntersectsLine implements polygon_intersects_line(p, l) = exterior
// intersects l (allow_on_edge=true) AND no hole contains l entirely
// (allow_on_edge=false).
func (v *compositeView) IntersectsLine(l *Line) bool {
	if !v.exterior.IntersectsLine(l, true) {
		return false
	}
	for _, h := range v.holes {
		if h.ContainsLine(l, false) {
			return false
		}
	}
	return true
}

func (v *compositeView) IntersectsPolygon(other PolygonView) bool {
	return polygonIntersectsPolygon(v, other)
}

// polygonIntersectsPolygon implements polygon_intersects_polygon as a
// symmetric check on exteriors and holes: the exteriors must intersect, and
// neither polygon's hole set may swallow the other's exterior.
func polygonIntersectsPolygon(p, q PolygonView) bool {
	if !p.Exterior().IntersectsRing(q.Exterior(), true) && !q.Exterior().IntersectsRing(p.Exterior(), true) {
		return false
	}
	for i := 0; i < p.NumHoles(); i++ {
		h, _ := p.HoleAt(i)
		if h.ContainsRing(q.Exterior(), false) {
			return false
		}
	}
	for i := 0; i < q.NumHoles(); i++ {
		h, _ := q.HoleAt(i)
		if h.ContainsRing(p.Exterior(), false) {
			return false
		}
	}
	return true
}

// NewPolygon builds a PolygonView: a zero-hole polygon aliases its exterior
// ring directly; a hole-bearing polygon allocates a composite.
func NewPolygon(exterior *Ring, holes []*Ring) PolygonView {
	if len(holes) == 0 {
		return &ringView{exterior: exterior}
	}
	return &compositeView{exterior: exterior, holes: holes}
}
