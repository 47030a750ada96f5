// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterizer

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/effect"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// faceHandle implements Handle on top of a golang.org/x/image font.Face.
// Both built-in loaders produce a font.Face, so they share this type.
type faceHandle struct {
	face     font.Face
	size     uint32
	tables   *fontTables
	hasGlyph func(r rune) bool

	// underline is the bar position and thickness in pixels,
	// or nil when the font has no usable post table.
	underline *underlineMetrics

	style   Style
	outline int
	closed  bool

	// last memoizes the most recent rasterization so that a metrics
	// query followed by a render of the same rune rasterizes once.
	last glyphRaster
}

// glyphRaster is a rasterized glyph in dot space (y down, origin on the
// baseline), with style effects already applied.
type glyphRaster struct {
	r      rune
	valid  bool
	extra  int
	bonus  int
	origin image.Point  // top-left of cov in dot space
	cov    *image.Alpha // zero-origin coverage, nil for empty glyphs

	advance int
}

func (g *glyphRaster) metrics() Metrics {
	m := Metrics{Advance: g.advance}
	if g.cov == nil {
		return m
	}
	b := g.cov.Bounds()
	m.MinX = g.origin.X
	m.MaxX = g.origin.X + b.Dx()
	m.MaxY = -g.origin.Y
	m.MinY = -(g.origin.Y + b.Dy())
	return m
}

// newFaceHandle wraps face. tables may be nil, in which case hasGlyph
// answers glyph queries and the underline falls back to a bar derived from
// the descent.
func newFaceHandle(face font.Face, size uint32, tables *fontTables, hasGlyph func(rune) bool) *faceHandle {
	h := &faceHandle{
		face:     face,
		size:     size,
		tables:   tables,
		hasGlyph: hasGlyph,
	}
	if tables != nil {
		h.underline = tables.underline(size)
		h.hasGlyph = tables.hasGlyph
	}
	return h
}

// Size implements Handle.
func (h *faceHandle) Size() uint32 {
	return h.size
}

// HasGlyph implements Handle.
func (h *faceHandle) HasGlyph(r rune) bool {
	if h.closed || h.hasGlyph == nil {
		return false
	}
	return h.hasGlyph(r)
}

// GlyphMetrics implements Handle.
func (h *faceHandle) GlyphMetrics(r rune) (Metrics, bool) {
	g, ok := h.rasterize(r)
	if !ok {
		return Metrics{}, false
	}
	return g.metrics(), true
}

// RenderGlyph implements Handle.
func (h *faceHandle) RenderGlyph(r rune) (*image.Gray, error) {
	if h.closed {
		return nil, ErrClosed
	}
	g, ok := h.rasterize(r)
	if !ok {
		return nil, fmt.Errorf("%w: %U", ErrNoGlyph, r)
	}
	m := g.metrics()

	// Pixels left of the pen position are drawn as if MinX were 0.
	shift := 0
	if m.MinX < 0 {
		shift = -m.MinX
	}

	width := max(g.advance, m.MaxX+shift, 1)
	top := -max(h.Ascent(), m.MaxY)
	bottom := max(h.Descent(), -m.MinY)

	var barTop, barHeight int
	underline := h.style.Has(StyleUnderline)
	if underline {
		barTop, barHeight = h.underlineBar()
		top = min(top, barTop)
		bottom = max(bottom, barTop+barHeight)
	}

	surface := image.NewGray(image.Rect(0, top, width, bottom))
	if g.cov != nil {
		b := g.cov.Bounds()
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				a := g.cov.Pix[y*g.cov.Stride+x]
				if a == 0 {
					continue
				}
				surface.Pix[surface.PixOffset(g.origin.X+x+shift, g.origin.Y+y)] = a
			}
		}
	}

	if underline {
		for y := barTop; y < barTop+barHeight; y++ {
			row := surface.PixOffset(0, y)
			for x := 0; x < width; x++ {
				surface.Pix[row+x] = 0xff
			}
		}
	}

	return surface, nil
}

// Kerning implements Handle.
func (h *faceHandle) Kerning(a, b rune) int {
	if h.closed {
		return 0
	}
	return h.face.Kern(a, b).Round()
}

// LineSkip implements Handle.
func (h *faceHandle) LineSkip() int {
	if h.closed {
		return 0
	}
	return h.face.Metrics().Height.Ceil()
}

// Ascent implements Handle.
func (h *faceHandle) Ascent() int {
	if h.closed {
		return 0
	}
	return h.face.Metrics().Ascent.Ceil()
}

// Descent implements Handle.
func (h *faceHandle) Descent() int {
	if h.closed {
		return 0
	}
	return h.face.Metrics().Descent.Ceil()
}

// Style implements Handle.
func (h *faceHandle) Style() Style {
	return h.style
}

// SetStyle implements Handle.
func (h *faceHandle) SetStyle(s Style) {
	if s != h.style {
		h.style = s
		h.last.valid = false
	}
}

// Outline implements Handle.
func (h *faceHandle) Outline() int {
	return h.outline
}

// SetOutline implements Handle.
func (h *faceHandle) SetOutline(px int) {
	px = max(px, 0)
	if px != h.outline {
		h.outline = px
		h.last.valid = false
	}
}

// Close implements Handle.
func (h *faceHandle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.last = glyphRaster{}
	return h.face.Close()
}

// extra returns how many pixels the current style grows glyph boxes by
// on each side.
func (h *faceHandle) extra() int {
	e := h.outline
	if h.style.Has(StyleBold) {
		e++
	}
	return e
}

// advanceBonus returns how many pixels the current style adds to advances.
func (h *faceHandle) advanceBonus() int {
	b := 2 * h.outline
	if h.style.Has(StyleBold) {
		b++
	}
	return b
}

func (h *faceHandle) rasterize(r rune) (*glyphRaster, bool) {
	if h.closed {
		return nil, false
	}
	extra := h.extra()
	bonus := h.advanceBonus()
	if h.last.valid && h.last.r == r && h.last.extra == extra && h.last.bonus == bonus {
		return &h.last, true
	}

	dr, mask, maskp, advance, ok := h.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, false
	}

	g := glyphRaster{
		r:       r,
		valid:   true,
		extra:   extra,
		bonus:   bonus,
		advance: advance.Round() + bonus,
	}
	if !dr.Empty() && mask != nil {
		// The face reuses its mask buffer, so copy it out before the
		// next call.
		cov := image.NewAlpha(image.Rect(0, 0, dr.Dx()+2*extra, dr.Dy()+2*extra))
		draw.Draw(cov, image.Rect(extra, extra, extra+dr.Dx(), extra+dr.Dy()), mask, maskp, draw.Src)
		if extra > 0 {
			cov = dilate(cov, extra)
		}
		g.cov = cov
		g.origin = dr.Min.Sub(image.Pt(extra, extra))
	}

	h.last = g
	return &h.last, true
}

// underlineBar returns the first row of the underline bar relative to the
// baseline (y down) and its height, both in pixels.
func (h *faceHandle) underlineBar() (top, height int) {
	if h.underline != nil {
		return h.underline.bar()
	}
	return max(1, h.Descent()/3), max(1, int(h.size)/16)
}

// dilate grows the coverage of src by radius pixels in every direction.
// src must have a zero origin.
func dilate(src *image.Alpha, radius int) *image.Alpha {
	rgba := effect.Dilate(src, float64(radius))
	dst := image.NewAlpha(src.Bounds())
	b := dst.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Pix[y*dst.Stride+x] = rgba.Pix[y*rgba.Stride+x*4+3]
		}
	}
	return dst
}
