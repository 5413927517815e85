package geomcore

import "testing"

func TestRectIsNone(t *testing.T) {
	if !NoneRect().IsNone() {
		t.Error("NoneRect should report IsNone")
	}
	r := RectOf(Point{1, 1})
	if r.IsNone() {
		t.Error("a rect around a nonzero point should not be none")
	}
}

func TestRectExpand(t *testing.T) {
	a := Rect{Min: Point{0, 0}, Max: Point{1, 1}}
	b := Rect{Min: Point{2, -1}, Max: Point{3, 0.5}}
	got := a.Expand(b)
	want := Rect{Min: Point{0, -1}, Max: Point{3, 1}}
	if got != want {
		t.Errorf("Expand: got %+v want %+v", got, want)
	}
	if NoneRect().Expand(a) != a {
		t.Error("expanding none by a should yield a")
	}
}

func TestRectCoversAndIntersects(t *testing.T) {
	outer := Rect{Min: Point{0, 0}, Max: Point{10, 10}}
	inner := Rect{Min: Point{2, 2}, Max: Point{4, 4}}
	if !outer.CoversRect(inner) {
		t.Error("outer should cover inner")
	}
	disjoint := Rect{Min: Point{20, 20}, Max: Point{30, 30}}
	if outer.IntersectsRect(disjoint) {
		t.Error("outer and disjoint should not intersect")
	}
	touching := Rect{Min: Point{10, 10}, Max: Point{20, 20}}
	if !outer.IntersectsRect(touching) {
		t.Error("rects sharing a corner should count as intersecting")
	}
}

func TestDistanceRect(t *testing.T) {
	a := Rect{Min: Point{0, 0}, Max: Point{1, 1}}
	b := Rect{Min: Point{4, 0}, Max: Point{5, 1}}
	if got := DistanceRect(a, b); got != 3 {
		t.Errorf("DistanceRect: got %v want 3", got)
	}
	overlapping := Rect{Min: Point{0.5, 0.5}, Max: Point{2, 2}}
	if got := DistanceRect(a, overlapping); got != 0 {
		t.Errorf("DistanceRect for overlapping rects: got %v want 0", got)
	}
}

func TestRectPointAt(t *testing.T) {
	r := Rect{Min: Point{0, 0}, Max: Point{2, 3}}
	want := []Point{{0, 0}, {2, 0}, {2, 3}, {0, 3}}
	for i, w := range want {
		if got := r.PointAt(i); got != w {
			t.Errorf("PointAt(%d): got %v want %v", i, got, w)
		}
	}
}
