// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterizer

import "errors"

// Sentinel errors for the rasterizer package.
var (
	// ErrZeroSize is returned when a handle is requested for character size 0.
	ErrZeroSize = errors.New("rasterizer: character size must be positive")

	// ErrEmptyData is returned when a loader receives no font bytes.
	ErrEmptyData = errors.New("rasterizer: empty font data")

	// ErrUnknownLoader is returned by Lookup for unregistered loader names.
	ErrUnknownLoader = errors.New("rasterizer: unknown loader")

	// ErrNoGlyph is returned when the font cannot produce a glyph.
	ErrNoGlyph = errors.New("rasterizer: glyph not available")

	// ErrClosed is returned when a closed handle is used.
	ErrClosed = errors.New("rasterizer: handle is closed")
)
