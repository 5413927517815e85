package geomcore

import "testing"

func TestClampSpread(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, MinSpread},
		{1, MinSpread},
		{MinSpread, MinSpread},
		{100, 100},
		{MaxSpread, MaxSpread},
		{MaxSpread + 1, MaxSpread},
		{-5, MinSpread},
	}
	for _, c := range cases {
		if got := ClampSpread(c.in); got != c.want {
			t.Errorf("ClampSpread(%d): got %d want %d", c.in, got, c.want)
		}
	}
}

func TestDefaultIndexStrategyRoundTrip(t *testing.T) {
	orig := GetDefaultIndex()
	defer SetDefaultIndex(orig)

	SetDefaultIndex(IndexYstripes)
	if got := GetDefaultIndex(); got != IndexYstripes {
		t.Errorf("GetDefaultIndex: got %v want IndexYstripes", got)
	}
}

func TestIndexSpreadRoundTrip(t *testing.T) {
	orig := GetIndexSpread()
	defer SetIndexSpread(orig)

	SetIndexSpread(9999)
	if got := GetIndexSpread(); got != MaxSpread {
		t.Errorf("GetIndexSpread after out-of-range set: got %d want %d (clamped)", got, MaxSpread)
	}
}

func TestSetAllocator_NilRestoresSystemDefault(t *testing.T) {
	orig := GetAllocator()
	defer SetAllocator(orig)

	SetAllocator(failingAllocator{})
	SetAllocator(nil)
	if _, err := GetAllocator().Alloc(16); err != nil {
		t.Errorf("nil SetAllocator should restore the system allocator: got error %v", err)
	}
}
