package gpu

import (
	"image"

	gl "github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gopherstage/render/texcache"
)

// glTexture is the GPU-resident half of a texcache entry: a texture name
// plus the dimensions it was allocated at.
type glTexture struct {
	handle        uint32
	width, height int32
}

func uploadTexture(img *image.RGBA) glTexture {
	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)
	// NEAREST + CLAMP_TO_EDGE, RGBA8: identical parameters to the teacher's
	// own fbo_texture setup in Renderer_GL.Init (sprite_render.go:2882).
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return glTexture{handle: handle, width: int32(b.Dx()), height: int32(b.Dy())}
}

func releaseTexture(t glTexture) {
	handle := t.handle
	gl.DeleteTextures(1, &handle)
}

// textureFor returns the GPU texture for a decoded LOD bitmap, uploading
// and caching it on first use via the shared weak texcache -- released
// automatically once the bitmap becomes unreachable, replacing the
// teacher's runtime.SetFinalizer on Texture_GL with texcache's
// weak.Pointer + runtime.AddCleanup.
//
// The cache keys on the *image.RGBA the LOD decoded to, not the LOD
// interface value itself: an interface value has no stable address
// across repeated calls (each Bitmap() call site would box a fresh one),
// whereas the decoded bitmap is the one object upstream costume code
// actually caches and keeps returning the same pointer to.
func textureFor(cache *texcache.Cache[image.RGBA, glTexture], bitmap *image.RGBA) glTexture {
	if t, ok := cache.Get(bitmap); ok {
		return t
	}
	t := uploadTexture(bitmap)
	cache.Put(bitmap, t, releaseTexture)
	return t
}
