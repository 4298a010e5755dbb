package geometry

import "testing"

func TestToScreenOrigin(t *testing.T) {
	x, y := ToScreen(0, 0, 1)
	if x != StageWidth/2 || y != StageHeight/2 {
		t.Fatalf("ToScreen(0,0) = (%v,%v), want (%v,%v)", x, y, StageWidth/2, StageHeight/2)
	}
}

func TestToScreenFlipsY(t *testing.T) {
	_, y1 := ToScreen(0, 10, 1)
	_, y2 := ToScreen(0, -10, 1)
	if !(y1 < StageHeight/2 && y2 > StageHeight/2) {
		t.Fatalf("ToScreen should map positive Scratch-Y above center and negative below, got y1=%v y2=%v", y1, y2)
	}
}

func TestRectOverlapsRejectsEdgeTouching(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	b := Rect{Left: 10, Top: 0, Right: 20, Bottom: 10}
	if a.Overlaps(b) {
		t.Fatal("edge-touching rects should not count as overlapping")
	}
}

func TestRectOverlapsDetectsRealOverlap(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	b := Rect{Left: 5, Top: 5, Right: 15, Bottom: 15}
	if !a.Overlaps(b) {
		t.Fatal("overlapping rects should report Overlaps == true")
	}
}

func TestRectIntersectEmptyWhenDisjoint(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Right: 5, Bottom: 5}
	b := Rect{Left: 10, Top: 10, Right: 15, Bottom: 15}
	if !a.Intersect(b).Empty() {
		t.Fatal("disjoint rects should intersect to an Empty rect")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	if !r.Contains(5, 5) {
		t.Fatal("expected (5,5) to be contained")
	}
	if r.Contains(20, 20) {
		t.Fatal("expected (20,20) to be outside")
	}
}
