package main

// skylineAtlas packs small images into one GPU texture using a skyline
// packer, so many small uploads share one bound texture instead of one
// GL texture each. In this demo it receives one sprite costume bitmap at
// startup; nothing is drawn from it. This is demo-only plumbing: the
// renderer's own per-costume texture cache (texcache.Cache) never depends on it, so it cannot
// regress the 1:1 LOD-to-texture contract the renderer packages rely on
// (see the repository's design notes on supplemented features).
//
// Grounded on the teacher's own TextureAtlas / CreateTextureAtlas /
// AddImage / FindPlaceToInsert (sprite_render.go:1975-2100): the same
// skyline-list packing algorithm, narrowed to the one allocation shape
// this demo needs (no atlas resize: add reports ok=false once the atlas
// is full).
import (
	"container/list"
	"image"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

type skylineAtlas struct {
	width, height int32
	handle        uint32
	skyline       *list.List
}

type skylinePoint struct{ x, y int32 }

func newSkylineAtlas(width, height int32) *skylineAtlas {
	a := &skylineAtlas{width: width, height: height, skyline: list.New()}
	gl.GenTextures(1, &a.handle)
	gl.BindTexture(gl.TEXTURE_2D, a.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	a.skyline.PushBack(skylinePoint{0, 0})
	return a
}

// add places img into the atlas and returns its normalized UV rect
// (u0,v0,u1,v1), or ok=false if no space remains.
func (a *skylineAtlas) add(img *image.RGBA) (rect [4]float32, ok bool) {
	b := img.Bounds()
	w, h := int32(b.Dx()), int32(b.Dy())
	x, y, ok := a.findPlace(w, h)
	if !ok {
		return rect, false
	}
	gl.BindTexture(gl.TEXTURE_2D, a.handle)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, x, y, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	rect = [4]float32{
		float32(x) / float32(a.width), float32(y) / float32(a.height),
		float32(x+w) / float32(a.width), float32(y+h) / float32(a.height),
	}
	return rect, true
}

func (a *skylineAtlas) findPlace(width, height int32) (int32, int32, bool) {
	const space = int32(1)
	width += space * 2
	height += space * 2

	bestX, bestY := int32(1<<31-1), int32(1<<31-1)
	var bestItr, bestItr2 *list.Element

	for itr := a.skyline.Front(); itr != nil; itr = itr.Next() {
		p := itr.Value.(skylinePoint)
		if width > a.width-p.x {
			break
		}
		if p.y >= bestY {
			continue
		}
		xMax := p.x + width
		y := p.y
		var itr2 *list.Element
		for itr2 = itr.Next(); itr2 != nil; itr2 = itr2.Next() {
			p2 := itr2.Value.(skylinePoint)
			if xMax <= p2.x {
				break
			}
			if y < p2.y {
				y = p2.y
			}
		}
		if y >= bestY || height > a.height-y {
			continue
		}
		bestItr, bestItr2 = itr, itr2
		bestX, bestY = p.x, y
	}
	if bestItr == nil {
		return 0, 0, false
	}

	a.skyline.InsertBefore(skylinePoint{bestX, bestY + height}, bestItr)
	switch {
	case bestItr2 == nil && bestX+width < a.width:
		last := a.skyline.Back().Value.(skylinePoint)
		a.skyline.InsertBefore(skylinePoint{bestX + width, last.y}, bestItr)
	case bestItr2 != nil && bestX+width < bestItr2.Value.(skylinePoint).x:
		prev := bestItr2.Prev().Value.(skylinePoint)
		a.skyline.InsertBefore(skylinePoint{bestX + width, prev.y}, bestItr)
	}
	for itr := bestItr; itr != bestItr2; {
		next := itr.Next()
		a.skyline.Remove(itr)
		itr = next
	}
	return bestX + space, bestY + space, true
}
