// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guifont

import (
	"github.com/gogpu/guifont/atlas"
	"github.com/gogpu/guifont/rasterizer"
	"github.com/gogpu/guifont/render"
)

// DefaultValidationSize is the character size LoadFromMemory opens to
// check that the font bytes are usable.
const DefaultValidationSize = 13

// Option configures a Font during creation.
//
// Example:
//
//	// Software texture, default settings
//	f, _ := guifont.New()
//
//	// GPU texture through a host renderer
//	f, _ := guifont.New(guifont.WithTextureFactory(render.GPUFactory{Creator: creator}))
type Option func(*options)

// options holds optional configuration for Font creation.
type options struct {
	factory        render.TextureFactory
	loaderName     string
	loader         rasterizer.Loader
	smooth         bool
	atlas          atlas.Config
	validationSize uint32
}

// defaultOptions returns the default font options.
func defaultOptions() options {
	return options{
		factory:        render.SoftwareFactory{Label: "guifont atlas"},
		smooth:         true,
		validationSize: DefaultValidationSize,
	}
}

// WithTextureFactory sets the factory used to create atlas textures.
// The default is render.SoftwareFactory. Passing nil makes Texture fail
// with ErrNoTextureFactory.
func WithTextureFactory(f render.TextureFactory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// WithLoader selects a registered rasterizer loader by name.
// See rasterizer.Loaders for the available names.
func WithLoader(name string) Option {
	return func(o *options) {
		o.loaderName = name
		o.loader = nil
	}
}

// WithCustomLoader sets the rasterizer loader directly.
func WithCustomLoader(l rasterizer.Loader) Option {
	return func(o *options) {
		o.loader = l
		o.loaderName = ""
	}
}

// WithSmooth sets the initial texture smoothing. The default is true.
func WithSmooth(smooth bool) Option {
	return func(o *options) {
		o.smooth = smooth
	}
}

// WithInitialTextureSize sets the initial atlas side length, which must be
// a power of two. The default is 128.
func WithInitialTextureSize(size int) Option {
	return func(o *options) {
		o.atlas.InitialSize = size
	}
}

// WithMaxTextureSize caps atlas growth. Glyphs that do not fit are cached
// without a bitmap. The default is unbounded.
func WithMaxTextureSize(size int) Option {
	return func(o *options) {
		o.atlas.MaxSize = size
	}
}

// WithValidationSize sets the character size LoadFromMemory opens to
// validate the font. The default is DefaultValidationSize.
func WithValidationSize(size uint32) Option {
	return func(o *options) {
		o.validationSize = size
	}
}
