// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

var (
	// ErrInvalidPixels is returned when an upload does not match its size.
	ErrInvalidPixels = errors.New("render: pixel data does not match texture size")

	// ErrNoTextureCreator is returned by GPU textures without a creator.
	ErrNoTextureCreator = errors.New("render: no texture creator")
)
