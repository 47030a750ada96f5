// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guifont

import (
	"errors"

	"github.com/gogpu/guifont/atlas"
	"github.com/gogpu/guifont/rasterizer"
)

// glyphPadding is left around every glyph in the atlas so that linear
// filtering does not pick up pixels of neighbors.
const glyphPadding = 2

// Glyph implements FontBackend.
//
// Results are cached per GlyphKey, including failures: a glyph whose
// metrics cannot be read is cached as the zero Glyph. The only uncached
// results are the zero Glyph returned when no handle exists for size and
// for sizes above MaxCharacterSize.
func (f *Font) Glyph(codePoint rune, size uint32, bold bool, outline float32) Glyph {
	if size > MaxCharacterSize {
		return Glyph{}
	}
	key := MakeGlyphKey(codePoint, size, bold, outline)
	if g, ok := f.glyphs[key]; ok {
		return g
	}

	h := f.handle(size)
	if h == nil {
		return Glyph{}
	}
	f.handles.ApplyBold(size, bold)
	f.handles.ApplyOutline(size, outline)

	g := f.rasterize(h, key)
	f.glyphs[key] = g
	return g
}

// rasterize builds the glyph for key and, when it has visible pixels,
// copies them into the atlas.
func (f *Font) rasterize(h rasterizer.Handle, key GlyphKey) Glyph {
	var g Glyph

	m, ok := h.GlyphMetrics(key.CodePoint())
	if !ok {
		return g
	}
	g.Advance = float32(m.Advance)
	g.Bounds = FloatRect{
		Left:   float32(m.MinX),
		Top:    float32(-m.MaxY),
		Width:  float32(m.Width()),
		Height: float32(m.Height()),
	}

	// Spaces and similar glyphs only have an advance.
	if m.Empty() {
		return g
	}

	surface, err := h.RenderGlyph(key.CodePoint())
	if err != nil {
		return g
	}

	// Pixels left of the pen are placed as if MinX were 0.
	src := atlas.IntRect{
		Left:   max(0, m.MinX),
		Top:    -m.MaxY,
		Width:  m.Width(),
		Height: m.Height(),
	}
	if !src.Image().In(surface.Bounds()) {
		return g
	}

	size := f.atlas.Size()
	r, err := f.atlas.Allocate(src.Width+2*glyphPadding, src.Height+2*glyphPadding)
	if err != nil {
		if errors.Is(err, atlas.ErrAtlasFull) {
			Logger().Warn("guifont: atlas full, glyph has no bitmap",
				"glyph", key.String(), "atlasSize", size)
		}
		return g
	}
	if f.atlas.Size() != size {
		Logger().Debug("guifont: atlas grown", "from", size, "to", f.atlas.Size())
	}

	g.TextureRect = r.Inset(glyphPadding)
	f.atlas.Blit(g.TextureRect, surface, src.Image().Min)
	f.textureStale = true
	return g
}
