package geom

import (
	"testing"

	"github.com/beetlebugorg/spatial/internal/geomcore"
)

func manyPoints(n int) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{float64(i), float64(i)}
	}
	return pts
}

func collectIndices(g *GeometryValue, query geomcore.Rect) []int {
	var got []int
	SearchGeom(g, query, func(i int) bool {
		got = append(got, i)
		return true
	})
	return got
}

func TestSearchGeom_BelowThresholdUsesLinearScan(t *testing.T) {
	mp := NewMultiPoint(manyPoints(5))
	if mp.index != nil {
		t.Fatal("a collection below the Multi-Index threshold should not build one")
	}
	query := geomcore.Rect{Min: Point{1, 1}, Max: Point{3, 3}}
	got := collectIndices(mp, query)
	if len(got) != 3 {
		t.Errorf("expected 3 children in range, got %d (%v)", len(got), got)
	}
}

func TestSearchGeom_AboveThresholdBuildsIndex(t *testing.T) {
	mp := NewMultiPoint(manyPoints(200))
	if mp.index == nil {
		t.Fatal("a collection above the Multi-Index threshold should build one")
	}
}

func TestSearchGeom_IndexedMatchesLinearScan(t *testing.T) {
	indexed := NewMultiPoint(manyPoints(200))
	unindexed := NewMultiPoint(manyPoints(31)) // one below multiIndexThreshold

	query := geomcore.Rect{Min: Point{10, 10}, Max: Point{20, 20}}

	gotIndexed := collectIndices(indexed, query)
	if len(gotIndexed) != 11 { // points 10..20 inclusive
		t.Errorf("indexed scan: got %d matches, want 11", len(gotIndexed))
	}

	gotLinear := collectIndices(unindexed, query)
	wantLinear := 0
	for i := 0; i < 31; i++ {
		if float64(i) >= 10 && float64(i) <= 20 {
			wantLinear++
		}
	}
	if len(gotLinear) != wantLinear {
		t.Errorf("linear scan: got %d matches, want %d", len(gotLinear), wantLinear)
	}
}

func TestSearchGeom_VisitStopsEarly(t *testing.T) {
	mp := NewMultiPoint(manyPoints(200))
	count := 0
	SearchGeom(mp, geomcore.Rect{Min: Point{0, 0}, Max: Point{199, 199}}, func(i int) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Errorf("expected visit to stop after 3 calls, got %d", count)
	}
}

func TestSearchGeom_NoMatches(t *testing.T) {
	mp := NewMultiPoint(manyPoints(200))
	got := collectIndices(mp, geomcore.Rect{Min: Point{-100, -100}, Max: Point{-50, -50}})
	if len(got) != 0 {
		t.Errorf("expected no matches outside every child's rect, got %v", got)
	}
}
