package software

import (
	"image/color"
	"testing"

	"github.com/gopherstage/render/stage"
)

func TestSpriteTouchesPointInsideShape(t *testing.T) {
	r := New(stage.DefaultConfig())
	st := newFakeStage(480, 360, color.RGBA{0, 0, 0, 255})
	sprite := newFakeSprite(st, 0, 0, 20, 20, color.RGBA{255, 0, 0, 255})

	if !r.SpriteTouchesPoint(sprite, 0, 0) {
		t.Fatal("expected sprite origin to be touched")
	}
}

func TestSpriteTouchesPointOutsideBounds(t *testing.T) {
	r := New(stage.DefaultConfig())
	st := newFakeStage(480, 360, color.RGBA{0, 0, 0, 255})
	sprite := newFakeSprite(st, 0, 0, 20, 20, color.RGBA{255, 0, 0, 255})

	if r.SpriteTouchesPoint(sprite, 200, 150) {
		t.Fatal("expected far point to miss sprite's rotated bounds")
	}
}

func TestSpritesIntersectOverlapping(t *testing.T) {
	r := New(stage.DefaultConfig())
	st := newFakeStage(480, 360, color.RGBA{0, 0, 0, 255})
	a := newFakeSprite(st, 0, 0, 40, 40, color.RGBA{255, 0, 0, 255})
	b := newFakeSprite(st, 10, 0, 40, 40, color.RGBA{0, 255, 0, 255})

	if !r.SpritesIntersect(a, []stage.Node{b}) {
		t.Fatal("expected overlapping sprites to intersect")
	}
}

func TestSpritesIntersectDisjoint(t *testing.T) {
	r := New(stage.DefaultConfig())
	st := newFakeStage(480, 360, color.RGBA{0, 0, 0, 255})
	a := newFakeSprite(st, -200, 0, 20, 20, color.RGBA{255, 0, 0, 255})
	b := newFakeSprite(st, 200, 0, 20, 20, color.RGBA{0, 255, 0, 255})

	if r.SpritesIntersect(a, []stage.Node{b}) {
		t.Fatal("expected far-apart sprites not to intersect")
	}
}

func TestSpriteTouchesColorFindsBackdrop(t *testing.T) {
	r := New(stage.DefaultConfig())
	backdrop := color.RGBA{200, 10, 10, 255}
	st := newFakeStage(480, 360, backdrop)
	sprite := newFakeSprite(st, 0, 0, 30, 30, color.RGBA{0, 0, 255, 255})
	st.children = []stage.Node{sprite}
	r.stage = st
	r.children = st.children

	if !r.SpriteTouchesColor(sprite, 0x00c80a0a) {
		t.Fatal("expected sprite to touch the backdrop color beneath it")
	}
}

func TestSpriteTouchesColorMissesAbsentColor(t *testing.T) {
	r := New(stage.DefaultConfig())
	backdrop := color.RGBA{200, 10, 10, 255}
	st := newFakeStage(480, 360, backdrop)
	sprite := newFakeSprite(st, 0, 0, 30, 30, color.RGBA{0, 0, 255, 255})
	st.children = []stage.Node{sprite}
	r.stage = st
	r.children = st.children

	if r.SpriteTouchesColor(sprite, 0x0000ff00) {
		t.Fatal("expected sprite not to touch a color absent from the scene")
	}
}
