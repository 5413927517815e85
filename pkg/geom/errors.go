package geom

import "github.com/beetlebugorg/spatial/internal/geomcore"

// Re-exported construction error types (spec.md §7's error kinds), so
// callers can type-switch on GeometryValue.Err() without importing the
// internal kernel package.
type (
	ErrTooFewPoints     = geomcore.ErrTooFewPoints
	ErrRingNotClosed    = geomcore.ErrRingNotClosed
	ErrInconsistentDims = geomcore.ErrInconsistentDims
	ErrIndexOutOfRange  = geomcore.ErrIndexOutOfRange
	ErrDepthExceeded    = geomcore.ErrDepthExceeded
	ErrNoMemory         = geomcore.ErrNoMemory
)
