// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guifont

import (
	"fmt"
	"image"

	"github.com/gogpu/guifont/render"
)

// Texture implements FontBackend. The size argument is ignored: all sizes
// share one atlas.
//
// The texture is created lazily. After glyphs are added, the next call
// uploads the atlas again into the same texture. When the atlas has grown
// a new texture is created instead, and the old one keeps the old pixels.
func (f *Font) Texture(uint32) (render.Texture, error) {
	if f.texture != nil && !f.textureStale {
		return f.texture, nil
	}

	size := f.atlas.Size()
	extent := image.Pt(size, size)
	tex := f.texture
	if tex == nil || tex.Size() != extent {
		if f.opts.factory == nil {
			return nil, ErrNoTextureFactory
		}
		tex = f.opts.factory.CreateTexture()
	}
	if err := tex.LoadTextureOnly(extent, f.atlas.Pix(), f.smooth); err != nil {
		return nil, fmt.Errorf("guifont: texture upload failed: %w", err)
	}
	Logger().Debug("guifont: atlas texture uploaded",
		"size", size, "glyphs", len(f.glyphs), "reused", tex == f.texture)

	f.texture = tex
	f.textureStale = false
	return tex, nil
}

// TextureUpToDate reports whether the last texture returned by Texture
// still matches the atlas.
func (f *Font) TextureUpToDate() bool {
	return f.texture != nil && !f.textureStale
}

// SetSmooth implements FontBackend. An existing texture is updated without
// uploading its pixels again.
func (f *Font) SetSmooth(smooth bool) {
	f.smooth = smooth
	if f.texture != nil {
		f.texture.SetSmooth(smooth)
	}
}

// IsSmooth implements FontBackend.
func (f *Font) IsSmooth() bool {
	return f.smooth
}
