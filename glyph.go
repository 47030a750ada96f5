// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guifont

import (
	"fmt"
	"math"

	"github.com/gogpu/guifont/atlas"
)

// IntRect is a rectangle in atlas pixels.
type IntRect = atlas.IntRect

// FloatRect is a rectangle in font-local pixels.
type FloatRect struct {
	Left   float32
	Top    float32
	Width  float32
	Height float32
}

// Glyph describes one rasterized glyph.
type Glyph struct {
	// Advance is the horizontal distance to the next pen position.
	Advance float32

	// Bounds is the glyph box relative to the pen on the baseline.
	// Top is negative for glyphs rising above the baseline.
	Bounds FloatRect

	// TextureRect locates the glyph in the atlas. A zero-area rectangle
	// means the glyph has no bitmap.
	TextureRect IntRect
}

// GlyphKey identifies a cached glyph by code point, character size, bold
// flag and outline thickness.
//
// Layout, least significant bit first:
//
//	bits  0-20  code point
//	bits 21-36  character size
//	bit     37  bold
//	bits 38-49  outline thickness in tenths of a pixel
type GlyphKey uint64

const (
	keyCodePointBits = 21
	keySizeBits      = 16
	keyOutlineBits   = 12

	keySizeShift    = keyCodePointBits
	keyBoldShift    = keySizeShift + keySizeBits
	keyOutlineShift = keyBoldShift + 1

	keyCodePointMask = 1<<keyCodePointBits - 1
	keySizeMask      = 1<<keySizeBits - 1
	keyOutlineMask   = 1<<keyOutlineBits - 1
)

// MaxCharacterSize is the largest character size a GlyphKey can hold.
// Font.Glyph returns the zero Glyph for larger sizes.
const MaxCharacterSize = keySizeMask

// MakeGlyphKey packs the glyph parameters into a key. Sizes above
// MaxCharacterSize are truncated, outlines are rounded to a tenth of a pixel and clamped
// to [0, 409.5].
func MakeGlyphKey(codePoint rune, size uint32, bold bool, outline float32) GlyphKey {
	k := GlyphKey(uint32(codePoint) & keyCodePointMask)
	k |= GlyphKey(size&keySizeMask) << keySizeShift
	if bold {
		k |= 1 << keyBoldShift
	}
	k |= GlyphKey(quantizeOutline(outline)) << keyOutlineShift
	return k
}

func quantizeOutline(outline float32) uint32 {
	tenths := math.Round(float64(outline) * 10)
	if !(tenths > 0) {
		return 0
	}
	if tenths > keyOutlineMask {
		return keyOutlineMask
	}
	return uint32(tenths)
}

// CodePoint returns the code point stored in the key.
func (k GlyphKey) CodePoint() rune {
	return rune(k & keyCodePointMask)
}

// CharacterSize returns the character size stored in the key.
func (k GlyphKey) CharacterSize() uint32 {
	return uint32(k>>keySizeShift) & keySizeMask
}

// Bold returns the bold flag stored in the key.
func (k GlyphKey) Bold() bool {
	return k>>keyBoldShift&1 == 1
}

// OutlineThickness returns the quantized outline thickness.
func (k GlyphKey) OutlineThickness() float32 {
	return float32(uint32(k>>keyOutlineShift)&keyOutlineMask) / 10
}

func (k GlyphKey) String() string {
	return fmt.Sprintf("%U@%d(bold=%t,outline=%.1f)", k.CodePoint(), k.CharacterSize(), k.Bold(), k.OutlineThickness())
}
