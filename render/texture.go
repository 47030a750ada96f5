// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Texture is a backend texture holding an RGBA8 image.
type Texture interface {
	// LoadTextureOnly replaces the texture content with pixels, which
	// must hold size.X*size.Y RGBA8 pixels, and sets the smoothing flag.
	LoadTextureOnly(size image.Point, pixels []byte, smooth bool) error

	// SetSmooth changes the smoothing flag without uploading pixels.
	SetSmooth(smooth bool)

	// IsSmooth reports whether the texture is sampled with linear filtering.
	IsSmooth() bool

	// Size returns the texture size in pixels.
	Size() image.Point
}

// TextureFactory creates textures for the backend in use.
type TextureFactory interface {
	CreateTexture() Texture
}

// FactoryFunc adapts a function to the TextureFactory interface.
type FactoryFunc func() Texture

// CreateTexture implements TextureFactory.
func (f FactoryFunc) CreateTexture() Texture {
	return f()
}

// ValidatePixels checks that pixels holds exactly size.X*size.Y RGBA pixels.
func ValidatePixels(size image.Point, pixels []byte) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("%w: size %v", ErrInvalidPixels, size)
	}
	if want := size.X * size.Y * BytesPerPixel; len(pixels) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPixels, len(pixels), want)
	}
	return nil
}
