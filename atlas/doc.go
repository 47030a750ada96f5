// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package atlas implements the growable glyph atlas bitmap used by guifont.
//
// The atlas is a square RGBA buffer whose side is a power of two. Color
// channels are always white and the alpha channel holds glyph coverage, so
// the renderer can tint glyphs with any color. The 2×2 block in the top-left
// corner is opaque and reserved for solid fills such as underlines.
//
// Space is handed out with shelf (row) packing. A glyph goes into the
// existing row whose height matches its own best, as long as the height
// ratio is between 0.7 and 1.0 and the row has horizontal room left. If no
// row qualifies, a new row 10% taller than the glyph is opened below the
// last one, doubling the atlas as often as needed. Doubling copies the old
// pixels into the top-left quadrant, so rectangles handed out earlier stay
// valid.
//
//	a, _ := atlas.New(atlas.Config{})
//	r, err := a.Allocate(w, h)
//	if err == nil {
//		a.Blit(r, coverage, coverage.Bounds().Min)
//	}
package atlas
