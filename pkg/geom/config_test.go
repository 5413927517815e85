package geom

import "testing"

func TestPrintFixedFloats_RoundTrip(t *testing.T) {
	defer SetPrintFixedFloats(false)

	SetPrintFixedFloats(true)
	if !GetPrintFixedFloats() {
		t.Error("expected GetPrintFixedFloats to report true after SetPrintFixedFloats(true)")
	}
	SetPrintFixedFloats(false)
	if GetPrintFixedFloats() {
		t.Error("expected GetPrintFixedFloats to report false after SetPrintFixedFloats(false)")
	}
}

func TestComposeIndexTag_DefaultsAreReexported(t *testing.T) {
	tag := ComposeIndexTag(IndexNatural, 8)
	if tag == 0 && IndexNatural != 0 {
		t.Error("ComposeIndexTag(IndexNatural, 8) should not be the zero tag")
	}
}

func TestSetDefaultIndex_RoundTrip(t *testing.T) {
	prev := GetDefaultIndex()
	defer SetDefaultIndex(prev)

	SetDefaultIndex(IndexYstripes)
	if got := GetDefaultIndex(); got != IndexYstripes {
		t.Errorf("GetDefaultIndex: got %v want IndexYstripes", got)
	}
}

func TestSetIndexSpread_RoundTrip(t *testing.T) {
	prev := GetIndexSpread()
	defer SetIndexSpread(prev)

	SetIndexSpread(16)
	if got := GetIndexSpread(); got != 16 {
		t.Errorf("GetIndexSpread: got %d want 16", got)
	}
}

func TestSetAllocator_NilRestoresDefault(t *testing.T) {
	SetAllocator(nil)
	g := NewPolygon(square(0, 0, 10, 10), nil, ComposeIndexTag(IndexNatural, 4))
	if g.TypeOf() != TypePolygon {
		t.Errorf("expected a healthy polygon with the default allocator restored, got %v (%v)", g.TypeOf(), g.Err())
	}
}
