// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
)

// textureDestroyer is implemented by GPU textures that hold resources.
type textureDestroyer interface {
	Destroy()
}

// GPUFactory creates textures through a host-provided texture creator.
//
// Example with gogpu:
//
//	factory := render.GPUFactory{Creator: drawer.TextureCreator()}
//	f := guifont.New(guifont.WithTextureFactory(factory))
//
//	tex, _ := f.Texture(16)
//	drawer.DrawTexture(tex.(*render.GPUTexture).GPU(), 0, 0)
type GPUFactory struct {
	Creator gpucontext.TextureCreator
	Label   string
}

// CreateTexture implements TextureFactory.
func (f GPUFactory) CreateTexture() Texture {
	return &GPUTexture{creator: f.Creator, label: f.Label}
}

// GPUTexture is a Texture backed by a gpucontext.Texture.
//
// The GPU texture is created lazily on the first upload. Later uploads of
// the same size go through gpucontext.TextureUpdater when the texture
// supports it; otherwise a new texture replaces the old one.
type GPUTexture struct {
	creator gpucontext.TextureCreator
	label   string
	tex     gpucontext.Texture
	size    image.Point
	smooth  bool
}

// LoadTextureOnly implements Texture.
func (t *GPUTexture) LoadTextureOnly(size image.Point, pixels []byte, smooth bool) error {
	if err := ValidatePixels(size, pixels); err != nil {
		return err
	}
	if t.creator == nil {
		return ErrNoTextureCreator
	}

	if t.tex != nil && t.size == size {
		if updater, ok := t.tex.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(pixels); err != nil {
				return fmt.Errorf("render: texture update failed: %w", err)
			}
			t.smooth = smooth
			return nil
		}
	}

	tex, err := t.creator.NewTextureFromRGBA(size.X, size.Y, pixels)
	if err != nil {
		return fmt.Errorf("render: texture creation failed: %w", err)
	}
	t.destroy()
	t.tex = tex
	t.size = size
	t.smooth = smooth
	return nil
}

// SetSmooth implements Texture. The host applies the filter when it binds
// the texture, see Descriptor.
func (t *GPUTexture) SetSmooth(smooth bool) {
	t.smooth = smooth
}

// IsSmooth implements Texture.
func (t *GPUTexture) IsSmooth() bool {
	return t.smooth
}

// Size implements Texture.
func (t *GPUTexture) Size() image.Point {
	return t.size
}

// GPU returns the underlying texture, or nil before the first upload.
func (t *GPUTexture) GPU() gpucontext.Texture {
	return t.tex
}

// Descriptor returns the descriptor matching the texture state.
func (t *GPUTexture) Descriptor() Descriptor {
	return NewDescriptor(t.label, t.size, t.smooth)
}

// Destroy releases the GPU texture. The texture can be loaded again.
func (t *GPUTexture) Destroy() {
	t.destroy()
	t.size = image.Point{}
}

func (t *GPUTexture) destroy() {
	if t.tex == nil {
		return
	}
	if d, ok := t.tex.(textureDestroyer); ok {
		d.Destroy()
	}
	t.tex = nil
}
