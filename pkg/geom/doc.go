// Package geom provides immutable planar geometry values — points, line
// strings, polygons (with holes), their multi-variants, and heterogeneous
// collections — together with a full spatial predicate engine (Covers,
// Intersects, Contains, Touches, Equals, Disjoint, Within, CoveredBy) and
// spatial search accelerated by per-ring indices and a secondary Multi-Index
// over multi-geometry/collection children.
//
// Construction never panics: every New* constructor returns a well-formed
// GeometryValue or one whose TypeOf() is TypeError, carrying the failure in
// Err(). Serialization (WKT/WKB/GeoJSON), file I/O, and rendering are
// outside this package; construct values from already-decoded coordinates
// and hand the result to a serializer of your choosing.
package geom
