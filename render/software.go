// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
)

// SoftwareFactory creates SoftwareTexture values.
type SoftwareFactory struct {
	// Label is copied into the descriptor of every texture.
	Label string
}

// CreateTexture implements TextureFactory.
func (f SoftwareFactory) CreateTexture() Texture {
	return &SoftwareTexture{label: f.Label}
}

// SoftwareTexture keeps a private copy of its pixels in memory.
//
// Example:
//
//	tex := render.SoftwareFactory{}.CreateTexture().(*render.SoftwareTexture)
//	_ = tex.LoadTextureOnly(image.Pt(128, 128), pixels, true)
//	hit := !tex.IsTransparentPixel(x, y)
type SoftwareTexture struct {
	label   string
	size    image.Point
	pixels  []byte
	smooth  bool
	uploads int
}

// LoadTextureOnly implements Texture.
func (t *SoftwareTexture) LoadTextureOnly(size image.Point, pixels []byte, smooth bool) error {
	if err := ValidatePixels(size, pixels); err != nil {
		return err
	}
	if cap(t.pixels) >= len(pixels) {
		t.pixels = t.pixels[:len(pixels)]
	} else {
		t.pixels = make([]byte, len(pixels))
	}
	copy(t.pixels, pixels)
	t.size = size
	t.smooth = smooth
	t.uploads++
	return nil
}

// SetSmooth implements Texture.
func (t *SoftwareTexture) SetSmooth(smooth bool) {
	t.smooth = smooth
}

// IsSmooth implements Texture.
func (t *SoftwareTexture) IsSmooth() bool {
	return t.smooth
}

// Size implements Texture.
func (t *SoftwareTexture) Size() image.Point {
	return t.size
}

// Uploads returns how many times pixels were loaded into the texture.
func (t *SoftwareTexture) Uploads() int {
	return t.uploads
}

// Pixels returns the texture pixels. The slice must not be modified.
func (t *SoftwareTexture) Pixels() []byte {
	return t.pixels
}

// IsTransparentPixel reports whether the pixel at (x, y) has zero alpha.
// Pixels outside the texture are transparent.
func (t *SoftwareTexture) IsTransparentPixel(x, y int) bool {
	if x < 0 || y < 0 || x >= t.size.X || y >= t.size.Y {
		return true
	}
	return t.pixels[(y*t.size.X+x)*BytesPerPixel+3] == 0
}

// Image returns a copy of the texture content.
func (t *SoftwareTexture) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rectangle{Max: t.size})
	copy(img.Pix, t.pixels)
	return img
}

// Descriptor returns the GPU descriptor matching the texture state.
func (t *SoftwareTexture) Descriptor() Descriptor {
	return NewDescriptor(t.label, t.size, t.smooth)
}
