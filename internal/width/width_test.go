package width

import "testing"

func TestFit(t *testing.T) {
	cases := []struct {
		v    int64
		want int
	}{
		{0, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 4},
		{4294967295, 4},
		{-1, 4},
		{-128, 4},
		{-2147483648, 4},
	}
	for _, c := range cases {
		if got := Fit(c.v); got != c.want {
			t.Errorf("Fit(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestFit_TooLarge(t *testing.T) {
	if got := Fit(4294967296); got != -1 {
		t.Errorf("Fit(2^32) = %d, want -1", got)
	}
}

func TestFitHint(t *testing.T) {
	if got := FitHint(1, 4); got != 4 {
		t.Errorf("FitHint(1, 4) = %d, want 4", got)
	}
	if got := FitHint(1, 0); got != 1 {
		t.Errorf("FitHint(1, 0) = %d, want 1", got)
	}
	if got := FitHint(70000, 2); got != -1 {
		t.Errorf("FitHint(70000, 2) = %d, want -1", got)
	}
}
