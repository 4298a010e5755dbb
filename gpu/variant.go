package gpu

import (
	"sort"
	"strings"

	"github.com/gopherstage/render/effect"
)

// VariantManager caches one compiled *Program per distinct #define set,
// keyed by the sorted, joined define list -- the same "canonicalize then
// cache" shape the teacher's Sff/texture-hash caching uses, applied here
// to shader variants instead of decoded sprites.
type VariantManager struct {
	vertSrc, fragSrc string
	variants         map[string]*Program
}

// NewVariantManager creates a manager compiling variants of vertSrc/
// fragSrc on demand.
func NewVariantManager(vertSrc, fragSrc string) *VariantManager {
	return &VariantManager{vertSrc: vertSrc, fragSrc: fragSrc, variants: map[string]*Program{}}
}

// Get returns the program for the given #define set, compiling and
// caching it on first use.
func (m *VariantManager) Get(defines []string) *Program {
	key := variantKey(defines)
	if p, ok := m.variants[key]; ok {
		return p
	}
	p := newProgram(m.vertSrc, m.fragSrc, defines)
	m.variants[key] = p
	return p
}

func variantKey(defines []string) string {
	sorted := append([]string(nil), defines...)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}

// DefinesFor returns the #define flags the sprite fragment shader needs
// to express f, one per non-zero, shape- or color-affecting field --
// mirroring effect.Filters' own field set rather than a hand-maintained
// parallel list.
func DefinesFor(f effect.Filters, onlyShapeFilters bool) []string {
	var defs []string
	if f.Mosaic != 0 {
		defs = append(defs, "ENABLE_MOSAIC")
	}
	if f.Pixelate != 0 {
		defs = append(defs, "ENABLE_PIXELATE")
	}
	if f.Whirl != 0 {
		defs = append(defs, "ENABLE_WHIRL")
	}
	if f.Fisheye != 0 {
		defs = append(defs, "ENABLE_FISHEYE")
	}
	if onlyShapeFilters {
		return defs
	}
	if f.Ghost != 0 {
		defs = append(defs, "ENABLE_GHOST")
	}
	if f.Brightness != 0 {
		defs = append(defs, "ENABLE_BRIGHTNESS")
	}
	if f.Color != 0 {
		defs = append(defs, "ENABLE_COLOR")
	}
	return defs
}
