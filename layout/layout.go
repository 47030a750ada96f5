// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"github.com/chewxy/math32"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/guifont"
	"github.com/gogpu/guifont/render"
)

// tabWidth is the width of a tab in spaces.
const tabWidth = 4

// Alignment specifies horizontal line alignment within Options.Width.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Options configures Build.
type Options struct {
	// Size is the character size in pixels.
	Size uint32

	// Bold selects bold glyphs.
	Bold bool

	// Outline is the outline thickness in pixels.
	Outline float32

	// Underline adds one underline quad per non-empty line.
	Underline bool

	// Alignment positions lines within Width.
	Alignment Alignment

	// Width is the container width used for alignment. If 0, the widest
	// line is used.
	Width float32
}

// Quad is an axis-aligned textured rectangle. Positions are in pixels with
// the origin at the top-left of the text block, UVs are normalized.
type Quad struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
}

// Line is one laid out line of text.
type Line struct {
	// First and Count select the glyph quads of this line in Result.Quads.
	First, Count int

	// Width is the pen advance at the end of the line.
	Width float32

	// Baseline is the y of the baseline.
	Baseline float32

	// Underline is set when Options.Underline is set and the line is not
	// empty.
	Underline *Quad
}

// Result is the output of Build.
type Result struct {
	// Quads holds the glyph quads of all lines, in order.
	Quads []Quad

	// Lines holds per-line geometry.
	Lines []Line

	// Width is the width of the widest line.
	Width float32

	// Height is the number of lines times the line spacing.
	Height float32

	// Texture is the atlas the UVs refer to.
	Texture render.Texture
}

// placed is a glyph before UVs are known.
type placed struct {
	x0, y0, x1, y1 float32
	rect           guifont.IntRect
}

// Build lays out s with backend.
//
// All glyphs are requested before the texture, so the returned texture
// already contains every glyph of s.
func Build(backend guifont.FontBackend, s string, opts Options) (Result, error) {
	var res Result
	if opts.Size == 0 || s == "" {
		return res, nil
	}

	s = norm.NFC.String(s)
	size := opts.Size
	lineSpacing := backend.LineSpacing(size)
	ascent := float32(size)

	var (
		glyphs []placed
		pen    float32
		prev   rune
		top    float32
		line   = Line{Baseline: ascent}
	)

	endLine := func() {
		line.Width = pen
		line.Count = len(glyphs) - line.First
		res.Lines = append(res.Lines, line)
		res.Width = math32.Max(res.Width, pen)
		top += lineSpacing
		pen, prev = 0, 0
		line = Line{First: len(glyphs), Baseline: math32.Round(top + ascent)}
	}

	for _, r := range s {
		if r == '\n' {
			endLine()
			continue
		}
		if prev != 0 {
			pen += backend.Kerning(prev, r, size, opts.Bold)
		}
		prev = r

		if r == '\t' {
			space := backend.Glyph(' ', size, opts.Bold, opts.Outline)
			pen += tabWidth * space.Advance
			continue
		}

		g := backend.Glyph(r, size, opts.Bold, opts.Outline)
		if !g.TextureRect.Empty() {
			x0 := math32.Round(pen + g.Bounds.Left)
			y0 := line.Baseline + g.Bounds.Top
			glyphs = append(glyphs, placed{
				x0:   x0,
				y0:   y0,
				x1:   x0 + g.Bounds.Width,
				y1:   y0 + g.Bounds.Height,
				rect: g.TextureRect,
			})
		}
		pen += g.Advance
	}
	endLine()
	res.Height = float32(len(res.Lines)) * lineSpacing

	tex, err := backend.Texture(size)
	if err != nil {
		return Result{}, err
	}
	res.Texture = tex
	atlasSize := tex.Size()
	invW := 1 / float32(max(atlasSize.X, 1))
	invH := 1 / float32(max(atlasSize.Y, 1))

	res.Quads = make([]Quad, len(glyphs))
	for i, p := range glyphs {
		res.Quads[i] = Quad{
			X0: p.x0, Y0: p.y0, X1: p.x1, Y1: p.y1,
			U0: float32(p.rect.Left) * invW,
			V0: float32(p.rect.Top) * invH,
			U1: float32(p.rect.Right()) * invW,
			V1: float32(p.rect.Bottom()) * invH,
		}
	}

	if opts.Underline {
		pos := backend.UnderlinePosition(size)
		thickness := math32.Max(backend.UnderlineThickness(size), 1)
		for i := range res.Lines {
			l := &res.Lines[i]
			if l.Width <= 0 {
				continue
			}
			// Underline positions are measured from size pixels below the
			// line top, which is where the baseline sits.
			y0 := l.Baseline + pos
			l.Underline = &Quad{
				X0: 0, Y0: y0, X1: l.Width, Y1: y0 + thickness,
				// Sample the center of the opaque 2×2 block.
				U0: 0.5 * invW, V0: 0.5 * invH,
				U1: 1.5 * invW, V1: 1.5 * invH,
			}
		}
	}

	align(&res, opts)
	return res, nil
}

// align shifts lines horizontally according to opts.
func align(res *Result, opts Options) {
	if opts.Alignment == AlignLeft {
		return
	}
	container := opts.Width
	if container <= 0 {
		container = res.Width
	}
	for i := range res.Lines {
		l := &res.Lines[i]
		var offset float32
		switch opts.Alignment {
		case AlignCenter:
			offset = math32.Floor((container - l.Width) / 2)
		case AlignRight:
			offset = container - l.Width
		}
		if offset <= 0 {
			continue
		}
		for j := l.First; j < l.First+l.Count; j++ {
			q := &res.Quads[j]
			q.X0 += offset
			q.X1 += offset
		}
		if l.Underline != nil {
			l.Underline.X0 += offset
			l.Underline.X1 += offset
		}
	}
}
