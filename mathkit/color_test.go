package mathkit

import "testing"

func TestHueFloorNearBlack(t *testing.T) {
	h, s, v := HueFloor(0.5, 0.8, 0.01)
	if h != 0 || s != 1 || v != 0.055 {
		t.Fatalf("HueFloor(near-black) = (%v,%v,%v), want (0,1,0.055)", h, s, v)
	}
}

func TestHueFloorLowSaturation(t *testing.T) {
	h, s, v := HueFloor(0.7, 0.05, 0.4)
	if h != 0 || s != 0.09 || v != 0.4 {
		t.Fatalf("HueFloor(low-sat) = (%v,%v,%v), want (0,0.09,0.4)", h, s, v)
	}
}

func TestHueFloorPassthrough(t *testing.T) {
	h, s, v := HueFloor(0.33, 0.5, 0.5)
	if h != 0.33 || s != 0.5 || v != 0.5 {
		t.Fatalf("HueFloor(normal) changed values: (%v,%v,%v)", h, s, v)
	}
}

func TestShiftHueWrapsNegative(t *testing.T) {
	got := ShiftHue(0.1, -0.3)
	want := 0.8
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("ShiftHue(0.1,-0.3) = %v, want %v", got, want)
	}
}

func TestShiftHueWrapsOver(t *testing.T) {
	got := ShiftHue(0.9, 0.3)
	want := 0.2
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("ShiftHue(0.9,0.3) = %v, want %v", got, want)
	}
}

func TestRGBHSVRoundTrip(t *testing.T) {
	cases := [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {128, 64, 200}, {10, 10, 10}, {255, 255, 255}, {0, 0, 0}}
	for _, c := range cases {
		h, s, v := RGBToHSV(c[0], c[1], c[2])
		r, g, b := HSVToRGB(h, s, v)
		if absInt(int(r)-int(c[0])) > 1 || absInt(int(g)-int(c[1])) > 1 || absInt(int(b)-int(c[2])) > 1 {
			t.Errorf("round-trip %v -> (%v,%v,%v) -> (%v,%v,%v)", c, h, s, v, r, g, b)
		}
	}
}

func TestPackUnpackRGB(t *testing.T) {
	packed := PackRGB(0x12, 0x34, 0x56)
	if packed != 0x123456 {
		t.Fatalf("PackRGB = %#x, want 0x123456", packed)
	}
	r, g, b := UnpackRGB(packed)
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Fatalf("UnpackRGB = (%#x,%#x,%#x)", r, g, b)
	}
}

func absInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
