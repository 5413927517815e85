package geom

import (
	"testing"

	"github.com/beetlebugorg/spatial/internal/geomcore"
)

func TestFilterCovering(t *testing.T) {
	region := NewPolygon(square(0, 0, 100, 100), nil, 0)
	inside := NewPoint(Point{10, 10})
	outside := NewPoint(Point{500, 500})

	got := FilterCovering([]*GeometryValue{inside, outside}, region)
	if len(got) != 1 {
		t.Fatalf("expected 1 covered geometry, got %d", len(got))
	}
	if got[0] != inside {
		t.Error("expected the inside point to survive the filter")
	}
}

func TestFilterIntersecting(t *testing.T) {
	region := NewPolygon(square(0, 0, 100, 100), nil, 0)
	onEdge := NewPoint(Point{0, 50})
	farAway := NewPoint(Point{1000, 1000})

	got := FilterIntersecting([]*GeometryValue{onEdge, farAway}, region)
	if len(got) != 1 || got[0] != onEdge {
		t.Errorf("expected only the boundary point to intersect, got %d results", len(got))
	}
}

func TestFilterIntersectingRect(t *testing.T) {
	rect := geomcore.Rect{Min: Point{0, 0}, Max: Point{10, 10}}
	near := NewPoint(Point{5, 5})
	far := NewPoint(Point{50, 50})

	got := FilterIntersectingRect([]*GeometryValue{near, far}, rect)
	if len(got) != 1 || got[0] != near {
		t.Errorf("expected only the nearby point to pass, got %d results", len(got))
	}
}

func TestFilterCovering_EmptyInput(t *testing.T) {
	region := NewPolygon(square(0, 0, 100, 100), nil, 0)
	if got := FilterCovering(nil, region); got != nil {
		t.Errorf("expected nil for an empty input slice, got %v", got)
	}
}
