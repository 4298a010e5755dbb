package software

import (
	"image"
	"image/color"
	"math"
)

// fillCircle and strokeLine are hand-rolled: no pack dependency provides
// 2D stroke/fill rasterization at this scale (DESIGN.md), so this is the
// one raster primitive the software backend implements on stdlib alone.

func fillCircle(img *image.RGBA, cx, cy, radius float64, c color.RGBA) {
	if radius <= 0 {
		return
	}
	b := img.Bounds()
	r2 := radius * radius
	minX := int(math.Floor(cx - radius))
	maxX := int(math.Ceil(cx + radius))
	minY := int(math.Floor(cy - radius))
	maxY := int(math.Ceil(cy + radius))
	for y := minY; y <= maxY; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		dy := float64(y) + 0.5 - cy
		for x := minX; x <= maxX; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, blendOver(img.RGBAAt(x, y), c))
			}
		}
	}
}

// strokeLine draws a round-capped segment of the given radius by filling
// circles along the segment at half-pixel steps, then capping both ends --
// simple and correct at pen-tool resolutions, where segments are short and
// radii are small.
func strokeLine(img *image.RGBA, x1, y1, x2, y2, radius float64, c color.RGBA) {
	if radius <= 0 {
		radius = 0.5
	}
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		fillCircle(img, x1, y1, radius, c)
		return
	}
	step := radius
	if step > 0.5 {
		step = 0.5
	}
	steps := int(math.Ceil(length / step))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		fillCircle(img, x1+dx*t, y1+dy*t, radius, c)
	}
}

// blendOver composites src over dst using standard alpha compositing;
// img.SetRGBA alone would overwrite rather than blend, which would leave
// visible seams where overlapping circles meet along a stroke.
func blendOver(dst, src color.RGBA) color.RGBA {
	if src.A == 0 {
		return dst
	}
	if src.A == 255 {
		return src
	}
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	outA := sa + da*(1-sa)
	if outA <= 0 {
		return color.RGBA{}
	}
	blend := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / outA
		return to8(v / 255)
	}
	return color.RGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: to8(outA),
	}
}
