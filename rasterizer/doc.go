// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package rasterizer adapts external font rasterizers to the per-size
// handle model used by the guifont backend.
//
// A [Handle] is one font instance bound to one character size. Style
// parameters (bold, underline, outline thickness) are mutated on the
// handle rather than passed per call, mirroring how classic TrueType
// libraries behave. A [HandleSet] owns the font bytes and creates handles
// lazily, one per distinct size, remembering the last style applied to
// each so redundant style switches are skipped.
//
// # Pluggable Loaders
//
// Handles are produced by a [Loader]. Two loaders are registered by
// default:
//
//   - "opentype": golang.org/x/image/font/opentype (default)
//   - "freetype": github.com/golang/freetype/truetype
//
// Custom loaders can be registered with [Register]:
//
//	rasterizer.Register("mine", myLoader)
//	set := rasterizer.NewHandleSet(data, rasterizer.MustLookup("mine"))
//
// # Surfaces
//
// [Handle.RenderGlyph] returns a line-sized grayscale surface whose
// bounds are expressed relative to the glyph origin: x = 0 is the pen
// position (pixels left of it are shifted right, as if MinX were 0) and
// y = 0 is the baseline, growing downward. The surface spans from the
// font ascent to the descent, enlarged if the glyph or the underline bar
// reaches further.
package rasterizer
