package geom

import (
	"sync/atomic"

	"github.com/beetlebugorg/spatial/internal/geomcore"
)

// IndexTag selects a ring/line index strategy, optionally packing a spread
// override (spec.md §6's composed form). The zero value is NONE.
type IndexTag = geomcore.IndexTag

// IndexStrategy enumerates the ring index strategies.
type IndexStrategy = geomcore.IndexStrategy

const (
	IndexNone     = geomcore.IndexNone
	IndexNatural  = geomcore.IndexNatural
	IndexYstripes = geomcore.IndexYstripes
)

// ComposeIndexTag packs strategy and spread (0 meaning "use the process
// default") into an IndexTag.
func ComposeIndexTag(strategy IndexStrategy, spread int) IndexTag {
	return geomcore.ComposeIndexTag(strategy, spread)
}

// Allocator is the process-wide allocate hook; the default implementation
// always succeeds.
type Allocator = geomcore.Allocator

// SetAllocator installs the process-wide allocator used by index
// construction. A nil Allocator restores the system default.
func SetAllocator(a Allocator) { geomcore.SetAllocator(a) }

// SetDefaultIndex records the process-wide default ring index strategy,
// readable through GetDefaultIndex. Constructors build their indices from
// the IndexTag they are given and do not read this setting; a zero tag
// means IndexNone.
func SetDefaultIndex(s IndexStrategy) { geomcore.SetDefaultIndex(s) }

// GetDefaultIndex returns the process-wide default ring index strategy.
func GetDefaultIndex() IndexStrategy { return geomcore.GetDefaultIndex() }

// SetIndexSpread sets the process-wide default index spread, clamped to
// [geomcore.MinSpread, geomcore.MaxSpread].
func SetIndexSpread(n int) { geomcore.SetIndexSpread(n) }

// GetIndexSpread returns the process-wide default index spread.
func GetIndexSpread() int { return geomcore.GetIndexSpread() }

var printFixedFloats int32

// SetPrintFixedFloats toggles the process-wide hint that a serializer
// (outside this package's scope) should render floats in fixed rather than
// scientific notation. The kernel never formats floats itself; this flag is
// state only, read back by GetPrintFixedFloats for an external formatter to
// honor.
func SetPrintFixedFloats(v bool) {
	var i int32
	if v {
		i = 1
	}
	atomic.StoreInt32(&printFixedFloats, i)
}

// GetPrintFixedFloats reports the current print-fixed-floats setting.
func GetPrintFixedFloats() bool {
	return atomic.LoadInt32(&printFixedFloats) != 0
}
