package geomcore

import "testing"

func TestNewLine_TooFewPoints(t *testing.T) {
	_, err := NewLine([]Point{{0, 0}}, ComposeIndexTag(IndexNone, 0))
	if err == nil {
		t.Fatal("expected error for a single-point line")
	}
}

func TestLineLength(t *testing.T) {
	l, err := NewLine([]Point{{0, 0}, {3, 0}, {3, 4}}, ComposeIndexTag(IndexNone, 0))
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	if got, want := l.Length(), 7.0; got != want {
		t.Errorf("Length: got %v want %v", got, want)
	}
}

func TestLineRemainsOpen(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}, {2, 0}}
	l, err := NewLine(pts, ComposeIndexTag(IndexNone, 0))
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	if l.NumPoints() != len(pts) {
		t.Errorf("NewLine should not implicitly close: got %d points want %d", l.NumPoints(), len(pts))
	}
}

func TestLineIndexStrategy(t *testing.T) {
	pts := make([]Point, 0, 20)
	for i := 0; i < 20; i++ {
		pts = append(pts, Point{X: float64(i), Y: float64(i % 3)})
	}
	l, err := NewLine(pts, ComposeIndexTag(IndexYstripes, 4))
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	if got := l.IndexStrategy(); got != IndexYstripes {
		t.Errorf("IndexStrategy: got %v want IndexYstripes", got)
	}
}
