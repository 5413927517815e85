package geomcore

import (
	"math"
	"testing"
)

func segDistToPoint(target Point) func(Segment) float64 {
	return func(s Segment) float64 {
		return math.Min(dist(s.A, target), dist(s.B, target))
	}
}

func rectDistToPoint(target Point) func(Rect) float64 {
	return func(r Rect) float64 {
		return DistanceRect(r, RectOf(target))
	}
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestNearestSegment_MonotonicallyNonDecreasing(t *testing.T) {
	r := mustRing(t, regularPolygon(64), ComposeIndexTag(IndexNatural, 4))
	target := Point{X: 500, Y: 500}

	var dists []float64
	NearestSegment(r, rectDistToPoint(target), segDistToPoint(target), func(seg Segment, d float64, idx int) bool {
		dists = append(dists, d)
		return len(dists) < r.NumSegments()
	})

	for i := 1; i < len(dists); i++ {
		if dists[i] < dists[i-1]-epsilon {
			t.Fatalf("nearest order not monotonic at %d: %v then %v", i, dists[i-1], dists[i])
		}
	}
	if len(dists) == 0 {
		t.Fatal("expected at least one visited segment")
	}
}

func TestNearestSegment_LinearFallbackMatchesIndexed(t *testing.T) {
	pts := regularPolygon(64)
	target := Point{X: -300, Y: 150}

	indexed := mustRing(t, pts, ComposeIndexTag(IndexNatural, 4))
	unindexed := mustRing(t, pts, ComposeIndexTag(IndexNone, 0))

	var indexedOrder, linearOrder []float64
	NearestSegment(indexed, rectDistToPoint(target), segDistToPoint(target), func(seg Segment, d float64, idx int) bool {
		indexedOrder = append(indexedOrder, d)
		return true
	})
	NearestSegment(unindexed, rectDistToPoint(target), segDistToPoint(target), func(seg Segment, d float64, idx int) bool {
		linearOrder = append(linearOrder, d)
		return true
	})

	if len(indexedOrder) != len(linearOrder) {
		t.Fatalf("visited counts differ: indexed=%d linear=%d", len(indexedOrder), len(linearOrder))
	}
	for i := range indexedOrder {
		if math.Abs(indexedOrder[i]-linearOrder[i]) > 1e-9 {
			t.Errorf("distance at rank %d differs: indexed=%v linear=%v", i, indexedOrder[i], linearOrder[i])
		}
	}
}

func TestNearestSegment_EarlyStop(t *testing.T) {
	r := mustRing(t, regularPolygon(64), ComposeIndexTag(IndexNatural, 4))
	target := Point{X: 0, Y: 1000}

	visited := 0
	NearestSegment(r, rectDistToPoint(target), segDistToPoint(target), func(seg Segment, d float64, idx int) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("early stop should halt after 3 visits, got %d", visited)
	}
}

func TestNearestSegment_AllocatorFailureReturnsFalse(t *testing.T) {
	orig := GetAllocator()
	defer SetAllocator(orig)
	SetAllocator(failingAllocator{})

	r := mustRing(t, regularPolygon(64), ComposeIndexTag(IndexNatural, 4))
	ok := NearestSegment(r, rectDistToPoint(Point{}), segDistToPoint(Point{}), func(Segment, float64, int) bool {
		t.Fatal("visit should not be called when the allocator fails")
		return false
	})
	if ok {
		t.Error("NearestSegment should report false when the allocator fails")
	}
}
