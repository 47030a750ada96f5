// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout turns strings into textured quads using a
// guifont.FontBackend.
//
// Layout is intentionally simple: no shaping, no bidi and no wrapping.
// Text is NFC-normalized, runes are placed left to right with kerning,
// and '\n' starts a new line. Each visible glyph becomes one [Quad] whose
// UV coordinates address the backend atlas texture.
//
//	res, err := layout.Build(font, "Hello,\nworld", layout.Options{Size: 16})
//	for _, q := range res.Quads {
//		// draw q with res.Texture
//	}
package layout
