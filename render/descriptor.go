// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/gogpu/gputypes"
)

// Descriptor describes how a texture should be created and sampled.
// This mirrors the WebGPU texture and sampler descriptors.
type Descriptor struct {
	// Label is an optional debug label.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// Format is always RGBA8Unorm for atlases.
	Format gputypes.TextureFormat

	// Usage lists the texture usages the atlas needs.
	Usage gputypes.TextureUsage

	// MagFilter and MinFilter follow the smoothing flag.
	MagFilter gputypes.FilterMode
	MinFilter gputypes.FilterMode

	// AddressMode keeps glyph edges from bleeding across the atlas border.
	AddressMode gputypes.AddressMode
}

// NewDescriptor returns the descriptor of an atlas texture of the given
// size and smoothing.
func NewDescriptor(label string, size image.Point, smooth bool) Descriptor {
	filter := FilterMode(smooth)
	return Descriptor{
		Label:       label,
		Width:       uint32(max(size.X, 0)),
		Height:      uint32(max(size.Y, 0)),
		Format:      gputypes.TextureFormatRGBA8Unorm,
		Usage:       gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		MagFilter:   filter,
		MinFilter:   filter,
		AddressMode: gputypes.AddressModeClampToEdge,
	}
}

// FilterMode maps the smoothing flag to a sampler filter.
func FilterMode(smooth bool) gputypes.FilterMode {
	if smooth {
		return gputypes.FilterModeLinear
	}
	return gputypes.FilterModeNearest
}
