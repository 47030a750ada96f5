// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guifont

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/guifont/atlas"
	"github.com/gogpu/guifont/rasterizer"
	"github.com/gogpu/guifont/render"
)

// Font is a FontBackend that rasterizes glyphs on demand and packs them into
// a single growable texture atlas.
//
// Font is not safe for concurrent use. All methods must be called from the
// goroutine that owns the UI.
type Font struct {
	opts    options
	loader  rasterizer.Loader
	handles *rasterizer.HandleSet
	glyphs  map[GlyphKey]Glyph
	atlas   *atlas.Atlas

	texture      render.Texture
	textureStale bool
	smooth       bool

	underlines map[uint32]underlineInfo
}

// New creates a Font without font data. Call LoadFromMemory or
// LoadFromFile before requesting glyphs.
func New(opts ...Option) (*Font, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	loader := o.loader
	if loader == nil {
		l, err := rasterizer.Lookup(o.loaderName)
		if err != nil {
			return nil, err
		}
		loader = l
	}

	a, err := atlas.New(o.atlas)
	if err != nil {
		return nil, err
	}

	return &Font{
		opts:       o,
		loader:     loader,
		handles:    rasterizer.NewHandleSet(nil, loader),
		glyphs:     make(map[GlyphKey]Glyph),
		atlas:      a,
		smooth:     o.smooth,
		underlines: make(map[uint32]underlineInfo),
	}, nil
}

// LoadFromMemory replaces the font with data. The Font keeps a reference
// to data, which must not be modified afterwards.
//
// Every cached glyph, row, underline metric and texture is discarded and
// previously opened handles are closed, even when the new data is invalid.
// The font is validated by opening it at the validation size.
func (f *Font) LoadFromMemory(data []byte) error {
	f.reset()
	if len(data) == 0 {
		return ErrEmptyFontData
	}

	f.handles = rasterizer.NewHandleSet(data, f.loader)
	if _, err := f.handles.Get(f.opts.validationSize); err != nil {
		Logger().Warn("guifont: font could not be opened",
			"size", f.opts.validationSize, "bytes", len(data), "err", err)
		return fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}

	Logger().Debug("guifont: font loaded", "bytes", len(data))
	return nil
}

// LoadFromFile reads the file at path and calls LoadFromMemory.
func (f *Font) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		f.reset()
		return fmt.Errorf("guifont: read font file: %w", err)
	}
	return f.LoadFromMemory(data)
}

// reset closes every handle and returns the font to its initial state.
func (f *Font) reset() {
	if err := f.handles.Close(); err != nil {
		Logger().Warn("guifont: closing font handles", "err", err)
	}
	f.handles = rasterizer.NewHandleSet(nil, f.loader)
	clear(f.glyphs)
	clear(f.underlines)
	f.atlas.Reset()
	f.texture = nil
	f.textureStale = false
}

// Close releases every font handle and the font data.
// The Font can be reused by loading a new font.
func (f *Font) Close() error {
	err := f.handles.Close()
	f.handles = rasterizer.NewHandleSet(nil, f.loader)
	clear(f.underlines)
	return err
}

// handle returns the handle for size, opening it on first use.
// It returns nil when size is 0, no font is loaded, or opening fails.
func (f *Font) handle(size uint32) rasterizer.Handle {
	if size == 0 {
		return nil
	}
	n := f.handles.Len()
	h, err := f.handles.Get(size)
	if err != nil {
		if !errors.Is(err, rasterizer.ErrEmptyData) {
			Logger().Warn("guifont: cannot open font size", "size", size, "err", err)
		}
		return nil
	}
	if f.handles.Len() != n {
		Logger().Debug("guifont: opened font size", "size", size)
	}
	return h
}

// HasGlyph implements FontBackend. It answers from any open handle and
// returns false when none is open.
func (f *Font) HasGlyph(codePoint rune) bool {
	h, ok := f.handles.Any()
	if !ok {
		return false
	}
	return h.HasGlyph(codePoint)
}

// Kerning implements FontBackend.
func (f *Font) Kerning(first, second rune, size uint32, bold bool) float32 {
	h := f.handle(size)
	if h == nil {
		return 0
	}
	f.handles.ApplyBold(size, bold)
	return float32(h.Kerning(first, second))
}

// LineSpacing implements FontBackend.
func (f *Font) LineSpacing(size uint32) float32 {
	h := f.handle(size)
	if h == nil {
		return 0
	}
	return float32(h.LineSkip())
}

// GlyphCount returns the number of cached glyphs.
func (f *Font) GlyphCount() int {
	return len(f.glyphs)
}

// TextureSize returns the current atlas side length.
func (f *Font) TextureSize() int {
	return f.atlas.Size()
}

// Atlas returns the atlas bitmap. It must not be modified.
func (f *Font) Atlas() *atlas.Atlas {
	return f.atlas
}
