package effect

import "testing"

func TestShapeAffecting(t *testing.T) {
	cases := []struct {
		f    Filters
		want bool
	}{
		{Filters{}, false},
		{Filters{Ghost: 50, Brightness: 10, Color: 20}, false},
		{Filters{Whirl: 90}, true},
		{Filters{Mosaic: 5}, true},
		{Filters{Pixelate: 1}, true},
		{Filters{Fisheye: 1}, true},
	}
	for _, c := range cases {
		if got := c.f.ShapeAffecting(); got != c.want {
			t.Errorf("ShapeAffecting(%+v) = %v, want %v", c.f, got, c.want)
		}
	}
}

func TestOpacity(t *testing.T) {
	if got := (Filters{Ghost: 50}).Opacity(); got != 0.5 {
		t.Fatalf("Opacity(ghost=50) = %v, want 0.5", got)
	}
	if got := (Filters{Ghost: 150}).Opacity(); got != 0 {
		t.Fatalf("Opacity(ghost=150) = %v, want 0", got)
	}
	if got := (Filters{Ghost: -50}).Opacity(); got != 1 {
		t.Fatalf("Opacity(ghost=-50) = %v, want 1", got)
	}
}

func TestMosaicParamClamp(t *testing.T) {
	if got := MosaicParam(Filters{Mosaic: 0}); got != 1 {
		t.Fatalf("MosaicParam(0) = %v, want 1", got)
	}
	if got := MosaicParam(Filters{Mosaic: 100000}); got != 512 {
		t.Fatalf("MosaicParam(huge) = %v, want 512", got)
	}
}

func TestCSSApproximationExcludesGhost(t *testing.T) {
	s := Filters{Ghost: 90, Brightness: 10, Color: 100}.CSSApproximation()
	if s == "" {
		t.Fatal("empty CSS approximation")
	}
	// Ghost must never appear as an opacity() term: it's applied via
	// global alpha by the caller instead.
	if containsOpacity(s) {
		t.Fatalf("CSSApproximation leaked ghost as opacity(): %q", s)
	}
}

func containsOpacity(s string) bool {
	for i := 0; i+7 <= len(s); i++ {
		if s[i:i+7] == "opacity" {
			return true
		}
	}
	return false
}
