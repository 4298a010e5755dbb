package gpu

import _ "embed"

//go:embed shaders/sprite.vert.glsl
var spriteVertSrc string

//go:embed shaders/sprite.frag.glsl
var spriteFragSrc string

//go:embed shaders/pendot.vert.glsl
var penDotVertSrc string

//go:embed shaders/pendot.frag.glsl
var penDotFragSrc string

//go:embed shaders/penline.vert.glsl
var penLineVertSrc string

//go:embed shaders/penline.frag.glsl
var penLineFragSrc string

//go:embed shaders/penblit.vert.glsl
var penBlitVertSrc string

//go:embed shaders/penblit.frag.glsl
var penBlitFragSrc string
