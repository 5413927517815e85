// Package geom is the public API of the geometry library: a tagged-union
// GeometryValue over points, line strings, polygons, their multi-variants,
// and heterogeneous collections, plus the spatial predicate engine and
// process-wide configuration surface built on top of internal/geomcore.
package geom

import (
	"fmt"

	"github.com/beetlebugorg/spatial/internal/geomcore"
)

// Type identifies which variant a GeometryValue holds.
type Type int

const (
	TypePoint Type = iota
	TypeLineString
	TypePolygon
	TypeMultiPoint
	TypeMultiLineString
	TypeMultiPolygon
	TypeGeometryCollection
	TypeEmpty
	TypeError
)

// String returns the GeoJSON-style name of t.
func (t Type) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeGeometryCollection:
		return "GeometryCollection"
	case TypeEmpty:
		return "Empty"
	case TypeError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Coords carries the optional z/m coordinate arrays and opaque foreign-member
// JSON a constructor may attach to a geometry. One entry per coordinate
// position of the variant being built (one for Point, one per point for the
// rest); a nil Z or M means "no such dimension". ExtraJSON is preserved
// verbatim for round-trip by a serializer outside this package's scope.
type Coords struct {
	Z         []float64
	M         []float64
	ExtraJSON string
}

func (c Coords) dims() int {
	d := 2
	if len(c.Z) > 0 {
		d = 3
	}
	if len(c.M) > 0 {
		d = 4
	}
	return d
}

// GeometryValue is the immutable tagged union described by the library: a
// base kind (point/line/polygon), a multi-kind (flat slice of children), a
// collection (heterogeneous children), a typed empty, or an error sentinel.
// Every variant carries a cached bounding rect; multi-kinds and collections
// with at least multiIndexThreshold children additionally carry a
// Multi-Index.
type GeometryValue struct {
	typ       Type
	emptyType Type // meaningful only when typ == TypeEmpty

	point Point
	line  *geomcore.Line
	poly  geomcore.PolygonView

	multiPoints []Point
	multiLines  []*geomcore.Line
	multiPolys  []geomcore.PolygonView
	children    []*GeometryValue

	rect geomcore.Rect
	dims int
	z, m []float64

	index *MultiIndex

	extraJSON           string
	isFeature           bool
	isFeatureCollection bool

	err error
}

// Point is a coordinate pair; aliased here so callers of pkg/geom never need
// to import internal/geomcore directly.
type Point = geomcore.Point

// Rect is an axis-aligned bounding rect; aliased for the same reason as
// Point, since SearchGeom, FilterIntersectingRect, and FullRect all speak in
// terms of it.
type Rect = geomcore.Rect

// NewRect builds a Rect from two corner points, normalizing min/max.
func NewRect(a, b Point) Rect {
	min := Point{X: a.X, Y: a.Y}
	max := Point{X: b.X, Y: b.Y}
	if min.X > max.X {
		min.X, max.X = max.X, min.X
	}
	if min.Y > max.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	return Rect{Min: min, Max: max}
}

// IntersectsRect reports whether two rects overlap, boundary included.
func IntersectsRect(a, b Rect) bool { return geomcore.IntersectsRect(a, b) }

// errorValue builds an Error-tagged GeometryValue. Constructors never panic
// or return nil; a failure becomes this sentinel so downstream code can
// propagate it uniformly (spec's construction-never-fails contract).
func errorValue(err error) *GeometryValue {
	return &GeometryValue{typ: TypeError, err: err}
}

// Err returns the wrapped error when TypeOf(g) == TypeError, else nil.
func (g *GeometryValue) Err() error {
	if g == nil || g.typ != TypeError {
		return nil
	}
	return g.err
}

// TypeOf reports g's variant.
func (g *GeometryValue) TypeOf() Type {
	if g == nil {
		return TypeError
	}
	return g.typ
}

// IsEmpty reports whether g is the typed-empty variant.
func (g *GeometryValue) IsEmpty() bool { return g.TypeOf() == TypeEmpty }

// IsFeature reports whether g was constructed as a GeoJSON Feature wrapper.
func (g *GeometryValue) IsFeature() bool { return g != nil && g.isFeature }

// IsFeatureCollection reports whether g was constructed as a GeoJSON
// FeatureCollection wrapper.
func (g *GeometryValue) IsFeatureCollection() bool { return g != nil && g.isFeatureCollection }

// ExtraCoords returns the opaque foreign-member JSON attached at
// construction, or "" if none.
func (g *GeometryValue) ExtraCoords() string {
	if g == nil {
		return ""
	}
	return g.extraJSON
}

// Z returns g's z-coordinate array (length 1 for a Point, one per stored
// point otherwise), or nil if g carries no z dimension.
func (g *GeometryValue) Z() []float64 {
	if g == nil {
		return nil
	}
	return g.z
}

// M returns g's m-coordinate array, or nil if g carries no m dimension.
func (g *GeometryValue) M() []float64 {
	if g == nil {
		return nil
	}
	return g.m
}

// NumGeometries returns the number of children for a multi- or collection
// kind, 1 for a base kind, 0 for Empty or Error.
func (g *GeometryValue) NumGeometries() int {
	if g == nil {
		return 0
	}
	switch g.typ {
	case TypePoint, TypeLineString, TypePolygon:
		return 1
	case TypeMultiPoint:
		return len(g.multiPoints)
	case TypeMultiLineString:
		return len(g.multiLines)
	case TypeMultiPolygon:
		return len(g.multiPolys)
	case TypeGeometryCollection:
		return len(g.children)
	default:
		return 0
	}
}

// GeometryAt returns the i'th child of a multi- or collection kind, or the
// sole base geometry for i==0 on a base kind.
func (g *GeometryValue) GeometryAt(i int) (*GeometryValue, error) {
	if g == nil || i < 0 || i >= g.NumGeometries() {
		return nil, &geomcore.ErrIndexOutOfRange{Index: i, Len: g.NumGeometries()}
	}
	switch g.typ {
	case TypePoint, TypeLineString, TypePolygon:
		return g, nil
	case TypeMultiPoint:
		return NewPoint(g.multiPoints[i]), nil
	case TypeMultiLineString:
		return lineGeometry(g.multiLines[i]), nil
	case TypeMultiPolygon:
		return polygonGeometry(g.multiPolys[i]), nil
	case TypeGeometryCollection:
		return g.children[i], nil
	default:
		return nil, fmt.Errorf("geom: GeometryAt on %v", g.typ)
	}
}

// FullRect returns g's cached x/y bounding rect. Only the two planar
// dimensions are covered: z and m values are not included, even when g
// carries them.
func (g *GeometryValue) FullRect() geomcore.Rect {
	if g == nil {
		return geomcore.NoneRect()
	}
	return g.rect
}

// Dims reports g's coordinate dimensionality (2, 3, or 4).
func (g *GeometryValue) Dims() int {
	if g == nil || g.dims == 0 {
		return 2
	}
	return g.dims
}

// --- Base kind constructors ---

// NewPoint builds a 2D Point geometry.
func NewPoint(p Point) *GeometryValue {
	return &GeometryValue{typ: TypePoint, point: p, rect: geomcore.RectOf(p), dims: 2}
}

// NewPointZM builds a Point geometry with optional z/m.
func NewPointZM(p Point, c Coords) *GeometryValue {
	g := NewPoint(p)
	g.dims = c.dims()
	g.z = c.Z
	g.m = c.M
	g.extraJSON = c.ExtraJSON
	return g
}

// NewLineString builds a LineString geometry from pts, closing over
// internal/geomcore's Line construction; a shape error (fewer than 2 points)
// becomes an Error-tagged value, never a panic.
func NewLineString(pts []Point, tag IndexTag) *GeometryValue {
	l, err := geomcore.NewLine(pts, geomcore.IndexTag(tag))
	if err != nil {
		return errorValue(err)
	}
	return lineGeometry(l)
}

// NewLineStringZM builds a LineString geometry with optional z/m arrays,
// one entry per point.
func NewLineStringZM(pts []Point, tag IndexTag, c Coords) *GeometryValue {
	g := NewLineString(pts, tag)
	if g.typ == TypeError {
		return g
	}
	if err := validateDims(len(pts), c); err != nil {
		return errorValue(err)
	}
	g.dims = c.dims()
	g.z = c.Z
	g.m = c.M
	g.extraJSON = c.ExtraJSON
	return g
}

func lineGeometry(l *geomcore.Line) *GeometryValue {
	return &GeometryValue{typ: TypeLineString, line: l, rect: l.Rect(), dims: 2}
}

// NewPolygon builds a Polygon geometry from an exterior ring and holes
// (both as raw point sequences); a shape error in any ring becomes an
// Error-tagged value.
func NewPolygon(exterior []Point, holes [][]Point, tag IndexTag) *GeometryValue {
	ext, err := geomcore.NewRing(exterior, geomcore.IndexTag(tag))
	if err != nil {
		return errorValue(err)
	}
	holeRings := make([]*geomcore.Ring, len(holes))
	for i, h := range holes {
		hr, err := geomcore.NewRing(h, geomcore.IndexTag(tag))
		if err != nil {
			return errorValue(err)
		}
		holeRings[i] = hr
	}
	return polygonGeometry(geomcore.NewPolygon(ext, holeRings))
}

func polygonGeometry(p geomcore.PolygonView) *GeometryValue {
	return &GeometryValue{typ: TypePolygon, poly: p, rect: p.Rect(), dims: 2}
}

// NewPolygonZM builds a Polygon geometry with optional z/m arrays, packed
// one entry per point across the exterior ring followed by each hole in
// order (spec.md §4.5's packed extra-coordinates layout).
func NewPolygonZM(exterior []Point, holes [][]Point, tag IndexTag, c Coords) *GeometryValue {
	g := NewPolygon(exterior, holes, tag)
	if g.typ == TypeError {
		return g
	}
	total := len(exterior)
	for _, h := range holes {
		total += len(h)
	}
	if err := validateDims(total, c); err != nil {
		return errorValue(err)
	}
	g.dims = c.dims()
	g.z = c.Z
	g.m = c.M
	g.extraJSON = c.ExtraJSON
	return g
}

// --- Multi-kind constructors ---

// NewMultiPoint builds a MultiPoint geometry over pts.
func NewMultiPoint(pts []Point) *GeometryValue {
	var rect geomcore.Rect
	for _, p := range pts {
		rect = rect.ExpandPoint(p)
	}
	g := &GeometryValue{typ: TypeMultiPoint, multiPoints: append([]Point(nil), pts...), rect: rect, dims: 2}
	g.index = buildMultiIndex(g)
	return g
}

// NewMultiPointZM builds a MultiPoint geometry with optional z/m arrays, one
// entry per point.
func NewMultiPointZM(pts []Point, c Coords) *GeometryValue {
	g := NewMultiPoint(pts)
	if err := validateDims(len(pts), c); err != nil {
		return errorValue(err)
	}
	g.dims = c.dims()
	g.z = c.Z
	g.m = c.M
	g.extraJSON = c.ExtraJSON
	return g
}

// NewMultiLineString builds a MultiLineString geometry from a slice of
// point sequences, one per component line.
func NewMultiLineString(lines [][]Point, tag IndexTag) *GeometryValue {
	ls := make([]*geomcore.Line, len(lines))
	var rect geomcore.Rect
	for i, pts := range lines {
		l, err := geomcore.NewLine(pts, geomcore.IndexTag(tag))
		if err != nil {
			return errorValue(err)
		}
		ls[i] = l
		rect = rect.Expand(l.Rect())
	}
	g := &GeometryValue{typ: TypeMultiLineString, multiLines: ls, rect: rect, dims: 2}
	g.index = buildMultiIndex(g)
	return g
}

// NewMultiLineStringZM builds a MultiLineString geometry with optional z/m
// arrays, packed one entry per point across the component lines in order.
func NewMultiLineStringZM(lines [][]Point, tag IndexTag, c Coords) *GeometryValue {
	g := NewMultiLineString(lines, tag)
	if g.typ == TypeError {
		return g
	}
	total := 0
	for _, l := range lines {
		total += len(l)
	}
	if err := validateDims(total, c); err != nil {
		return errorValue(err)
	}
	g.dims = c.dims()
	g.z = c.Z
	g.m = c.M
	g.extraJSON = c.ExtraJSON
	return g
}

// PolygonRings is one component of a MultiPolygon: an exterior ring plus
// any holes, both as raw point sequences.
type PolygonRings struct {
	Exterior []Point
	Holes    [][]Point
}

// NewMultiPolygon builds a MultiPolygon geometry from a slice of
// exterior+holes ring sets.
func NewMultiPolygon(polys []PolygonRings, tag IndexTag) *GeometryValue {
	ps := make([]geomcore.PolygonView, len(polys))
	var rect geomcore.Rect
	for i, pr := range polys {
		ext, err := geomcore.NewRing(pr.Exterior, geomcore.IndexTag(tag))
		if err != nil {
			return errorValue(err)
		}
		holeRings := make([]*geomcore.Ring, len(pr.Holes))
		for j, h := range pr.Holes {
			hr, err := geomcore.NewRing(h, geomcore.IndexTag(tag))
			if err != nil {
				return errorValue(err)
			}
			holeRings[j] = hr
		}
		pv := geomcore.NewPolygon(ext, holeRings)
		ps[i] = pv
		rect = rect.Expand(pv.Rect())
	}
	g := &GeometryValue{typ: TypeMultiPolygon, multiPolys: ps, rect: rect, dims: 2}
	g.index = buildMultiIndex(g)
	return g
}

// NewMultiPolygonZM builds a MultiPolygon geometry with optional z/m arrays,
// packed one entry per point across each polygon's exterior ring followed by
// its holes, in order.
func NewMultiPolygonZM(polys []PolygonRings, tag IndexTag, c Coords) *GeometryValue {
	g := NewMultiPolygon(polys, tag)
	if g.typ == TypeError {
		return g
	}
	total := 0
	for _, p := range polys {
		total += len(p.Exterior)
		for _, h := range p.Holes {
			total += len(h)
		}
	}
	if err := validateDims(total, c); err != nil {
		return errorValue(err)
	}
	g.dims = c.dims()
	g.z = c.Z
	g.m = c.M
	g.extraJSON = c.ExtraJSON
	return g
}

// NewGeometryCollection builds a GeometryCollection over children. Nesting
// depth beyond geomcore.MaxCollectionDepth is rejected with an Error value.
func NewGeometryCollection(children []*GeometryValue) *GeometryValue {
	if depth := collectionDepth(children, 1); depth > geomcore.MaxCollectionDepth {
		return errorValue(&geomcore.ErrDepthExceeded{Depth: depth, Max: geomcore.MaxCollectionDepth})
	}
	var rect geomcore.Rect
	for _, c := range children {
		rect = rect.Expand(c.FullRect())
	}
	g := &GeometryValue{typ: TypeGeometryCollection, children: append([]*GeometryValue(nil), children...), rect: rect, dims: 2}
	g.index = buildMultiIndex(g)
	return g
}

func collectionDepth(children []*GeometryValue, depth int) int {
	max := depth
	for _, c := range children {
		if c.typ != TypeGeometryCollection {
			continue
		}
		d := collectionDepth(c.children, depth+1)
		if d > max {
			max = d
		}
	}
	return max
}

// --- Empty and Feature wrappers ---

// NewEmpty builds a typed-empty geometry of the given kind.
func NewEmpty(t Type) *GeometryValue {
	return &GeometryValue{typ: TypeEmpty, emptyType: t}
}

// EmptyType reports which kind is empty, meaningful only when
// TypeOf(g) == TypeEmpty.
func (g *GeometryValue) EmptyType() Type {
	if g == nil {
		return TypeEmpty
	}
	return g.emptyType
}

// AsFeature marks g as having been parsed from a GeoJSON Feature wrapper,
// attaching extraJSON (e.g. properties) for passthrough. g is mutated and
// returned for chaining; safe because constructors have not yet published g
// to any other reader.
func (g *GeometryValue) AsFeature(extraJSON string) *GeometryValue {
	if g == nil {
		return g
	}
	g.isFeature = true
	g.extraJSON = extraJSON
	return g
}

// AsFeatureCollection wraps children as a GeoJSON FeatureCollection.
func AsFeatureCollection(children []*GeometryValue, extraJSON string) *GeometryValue {
	g := NewGeometryCollection(children)
	if g.typ == TypeError {
		return g
	}
	g.isFeatureCollection = true
	g.extraJSON = extraJSON
	return g
}

func validateDims(numPoints int, c Coords) error {
	if len(c.Z) > 0 && len(c.Z) != numPoints {
		return &geomcore.ErrInconsistentDims{Index: len(c.Z), Got: len(c.Z), Want: numPoints}
	}
	if len(c.M) > 0 && len(c.M) != numPoints {
		return &geomcore.ErrInconsistentDims{Index: len(c.M), Got: len(c.M), Want: numPoints}
	}
	return nil
}

// copyCoords snapshots g's z/m/extraJSON into a fresh Coords so Copy shares
// no backing array with the original.
func (g *GeometryValue) copyCoords() Coords {
	return Coords{
		Z:         append([]float64(nil), g.z...),
		M:         append([]float64(nil), g.m...),
		ExtraJSON: g.extraJSON,
	}
}

// Clone returns g itself: GeometryValue is immutable after construction, so
// a "clone" is a reference bump (spec's refcount semantics), not a copy.
func (g *GeometryValue) Clone() *GeometryValue { return g }

// Copy deep-copies g so the result shares no storage with the original.
func (g *GeometryValue) Copy() *GeometryValue {
	if g == nil {
		return nil
	}
	switch g.typ {
	case TypePoint:
		return NewPointZM(g.point, g.copyCoords())
	case TypeLineString:
		pts := linePoints(g.line)
		return NewLineStringZM(pts, 0, g.copyCoords())
	case TypePolygon:
		ext, holes := polygonPoints(g.poly)
		return NewPolygonZM(ext, holes, 0, g.copyCoords())
	case TypeMultiPoint:
		return NewMultiPointZM(g.multiPoints, g.copyCoords())
	case TypeMultiLineString:
		lines := make([][]Point, len(g.multiLines))
		for i, l := range g.multiLines {
			lines[i] = linePoints(l)
		}
		return NewMultiLineStringZM(lines, 0, g.copyCoords())
	case TypeMultiPolygon:
		polys := make([]PolygonRings, len(g.multiPolys))
		for i, p := range g.multiPolys {
			ext, holes := polygonPoints(p)
			polys[i] = PolygonRings{Exterior: ext, Holes: holes}
		}
		return NewMultiPolygonZM(polys, 0, g.copyCoords())
	case TypeGeometryCollection:
		children := make([]*GeometryValue, len(g.children))
		for i, c := range g.children {
			children[i] = c.Copy()
		}
		return NewGeometryCollection(children)
	case TypeEmpty:
		return NewEmpty(g.emptyType)
	default:
		return errorValue(g.err)
	}
}

func linePoints(l *geomcore.Line) []Point {
	pts := make([]Point, l.NumPoints())
	for i := range pts {
		pts[i], _ = l.PointAt(i)
	}
	return pts
}

func ringPoints(r *geomcore.Ring) []Point {
	pts := make([]Point, r.NumPoints())
	for i := range pts {
		pts[i], _ = r.PointAt(i)
	}
	return pts
}

func polygonPoints(p geomcore.PolygonView) ([]Point, [][]Point) {
	ext := ringPoints(p.Exterior())
	holes := make([][]Point, p.NumHoles())
	for i := range holes {
		h, _ := p.HoleAt(i)
		holes[i] = ringPoints(h)
	}
	return ext, holes
}
