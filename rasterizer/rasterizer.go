// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterizer

import (
	"fmt"
	"image"
	"sort"
)

// Style is a set of style flags applied to a Handle.
type Style uint8

const (
	// StyleNormal renders glyphs without modification.
	StyleNormal Style = 0

	// StyleBold emboldens glyphs by one pixel in every direction.
	StyleBold Style = 1 << 0

	// StyleUnderline draws the font underline on rendered surfaces.
	StyleUnderline Style = 1 << 1
)

// Has reports whether all flags in f are set in s.
func (s Style) Has(f Style) bool {
	return s&f == f
}

// String returns a readable representation of the style flags.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleBold:
		return "bold"
	case StyleUnderline:
		return "underline"
	case StyleBold | StyleUnderline:
		return "bold|underline"
	default:
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
}

// Metrics holds the integer metrics of a single glyph at the handle size.
// The box uses a y-up coordinate system: MaxY is the distance from the
// baseline to the top of the glyph, MinY to its bottom (negative below the
// baseline).
type Metrics struct {
	Advance int
	MinX    int
	MaxX    int
	MinY    int
	MaxY    int
}

// Width returns the horizontal extent of the glyph box.
func (m Metrics) Width() int {
	return m.MaxX - m.MinX
}

// Height returns the vertical extent of the glyph box.
func (m Metrics) Height() int {
	return m.MaxY - m.MinY
}

// Empty reports whether the glyph has no visible area (e.g. a space).
func (m Metrics) Empty() bool {
	return m.MinX == m.MaxX || m.MinY == m.MaxY
}

// Handle is a font instance bound to a single character size.
//
// Handles are not safe for concurrent use.
type Handle interface {
	// Size returns the character size in pixels.
	Size() uint32

	// HasGlyph reports whether the font maps r to a real glyph.
	HasGlyph(r rune) bool

	// GlyphMetrics returns the advance and box of r with the current style.
	GlyphMetrics(r rune) (Metrics, bool)

	// RenderGlyph renders r with the current style onto a grayscale
	// surface (see the package documentation for its coordinates).
	RenderGlyph(r rune) (*image.Gray, error)

	// Kerning returns the kerning adjustment between a and b in pixels.
	Kerning(a, b rune) int

	// LineSkip returns the recommended distance between baselines.
	LineSkip() int

	// Ascent returns the distance from the top of the line to the baseline.
	Ascent() int

	// Descent returns the distance from the baseline to the bottom of the line.
	Descent() int

	// Style returns the currently applied style flags.
	Style() Style

	// SetStyle replaces the style flags.
	SetStyle(s Style)

	// Outline returns the outline thickness in pixels.
	Outline() int

	// SetOutline sets the outline thickness in pixels.
	SetOutline(px int)

	// Close releases resources held by the handle.
	Close() error
}

// Loader creates handles from raw font bytes.
type Loader interface {
	// Load opens data at the given character size.
	Load(data []byte, size uint32) (Handle, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(data []byte, size uint32) (Handle, error)

// Load implements Loader.
func (f LoaderFunc) Load(data []byte, size uint32) (Handle, error) {
	return f(data, size)
}

// DefaultLoader is the name of the loader used when none is specified.
const DefaultLoader = "opentype"

// loaderRegistry holds registered loaders by name.
var loaderRegistry = map[string]Loader{
	"opentype": NewOpenTypeLoader(),
	"freetype": NewFreeTypeLoader(),
}

// Register registers a loader under name, replacing any previous one.
func Register(name string, l Loader) {
	loaderRegistry[name] = l
}

// Lookup returns the loader registered under name.
// An empty name selects DefaultLoader.
func Lookup(name string) (Loader, error) {
	if name == "" {
		name = DefaultLoader
	}
	l, ok := loaderRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLoader, name)
	}
	return l, nil
}

// MustLookup is like Lookup but panics if the loader is not registered.
func MustLookup(name string) Loader {
	l, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return l
}

// Loaders returns the names of all registered loaders, sorted.
func Loaders() []string {
	names := make([]string, 0, len(loaderRegistry))
	for name := range loaderRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
