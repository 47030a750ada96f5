// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package guifont is a glyph-atlas font backend for retained-mode GUI
// toolkits.
//
// A [Font] owns the bytes of one font file. Widgets and text layout ask it
// for glyphs by code point, character size, bold flag and outline
// thickness. Glyphs are rasterized on first use, packed into one growable
// RGBA atlas and cached, so every later request is a map lookup.
//
// # Quick Start
//
//	f, err := guifont.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := f.LoadFromFile("DejaVuSans.ttf"); err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	g := f.Glyph('A', 16, false, 0)
//	tex, err := f.Texture(16)
//
// g.TextureRect locates the glyph inside tex. The atlas stores white in
// the color channels and coverage in alpha, so glyphs are tinted by the
// vertex color when drawn.
//
// # Atlas
//
// The atlas starts at 128×128 and doubles whenever a new row does not fit,
// keeping earlier glyphs at their positions. The 2×2 block in its top-left
// corner is opaque and can be sampled to draw solid underlines. See package
// atlas for the packing rules.
//
// # Textures
//
// The atlas is uploaded lazily: [Font.Texture] uploads only when glyphs were
// added since the last call. The texture is reused while the atlas keeps its
// size and a new one is created through a [render.TextureFactory] when the
// atlas grows.
// The default factory keeps pixels in memory; [render.GPUFactory] uploads
// through a gpucontext texture creator supplied by the host.
//
// # Rasterizers
//
// Glyph outlines are rasterized by a [rasterizer.Loader], by default
// golang.org/x/image/font/opentype. Use [WithLoader] to select another
// registered loader.
//
// # Concurrency
//
// A Font is not safe for concurrent use. GUI toolkits drive it from the UI
// goroutine only.
//
// # Logging
//
// guifont is silent by default. Use [SetLogger] to receive debug records
// about atlas growth and texture uploads.
package guifont
