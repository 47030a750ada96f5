// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guifont

import "errors"

// Sentinel errors for font loading and texture creation.
var (
	// ErrEmptyFontData is returned when LoadFromMemory receives no bytes.
	ErrEmptyFontData = errors.New("guifont: empty font data")

	// ErrInvalidFont is returned when the font bytes cannot be opened.
	ErrInvalidFont = errors.New("guifont: invalid font")

	// ErrNoTextureFactory is returned by Texture when no factory is set.
	ErrNoTextureFactory = errors.New("guifont: no texture factory")
)
