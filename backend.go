// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guifont

import "github.com/gogpu/guifont/render"

// FontBackend is the font interface consumed by widgets and text layout.
//
// Query methods never fail. When the font is not loaded or a size cannot be
// opened they return zero values.
type FontBackend interface {
	// LoadFromMemory replaces the font with data. All cached state is reset.
	LoadFromMemory(data []byte) error

	// HasGlyph reports whether the font can display codePoint.
	HasGlyph(codePoint rune) bool

	// Glyph returns the glyph for the given parameters, rasterizing it into
	// the atlas on first use. Sizes above MaxCharacterSize yield the zero
	// Glyph.
	Glyph(codePoint rune, size uint32, bold bool, outline float32) Glyph

	// Kerning returns the extra horizontal offset between two code points.
	Kerning(first, second rune, size uint32, bold bool) float32

	// LineSpacing returns the distance between two baselines.
	LineSpacing(size uint32) float32

	// UnderlinePosition returns the top of the underline measured from
	// size pixels below the top of the line, positive downward.
	UnderlinePosition(size uint32) float32

	// UnderlineThickness returns the underline height in pixels.
	UnderlineThickness(size uint32) float32

	// Texture returns the atlas texture, uploading it if the atlas changed.
	Texture(size uint32) (render.Texture, error)

	// SetSmooth changes texture smoothing.
	SetSmooth(smooth bool)

	// IsSmooth reports whether the texture is smoothed.
	IsSmooth() bool
}

var _ FontBackend = (*Font)(nil)
