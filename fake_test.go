// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guifont

import (
	"errors"
	"image"

	"github.com/gogpu/guifont/rasterizer"
)

// fakeBox is the unstyled metrics of a fake glyph.
type fakeBox struct {
	advance                int
	minX, maxX, minY, maxY int
}

// fakeHandle is a deterministic rasterizer.Handle. Glyph boxes are filled
// with full coverage.
type fakeHandle struct {
	size    uint32
	boxes   map[rune]fakeBox
	ascent  int
	descent int

	// underline bar, rows relative to the baseline
	barTop, barHeight int

	// tiny makes RenderGlyph return a 1x1 surface.
	tiny bool

	style   rasterizer.Style
	outline int

	styleCalls   int
	outlineCalls int
	renders      int
	closed       bool
}

func (h *fakeHandle) Size() uint32 { return h.size }

func (h *fakeHandle) HasGlyph(r rune) bool {
	_, ok := h.boxes[r]
	return ok
}

func (h *fakeHandle) GlyphMetrics(r rune) (rasterizer.Metrics, bool) {
	b, ok := h.boxes[r]
	if !ok {
		return rasterizer.Metrics{}, false
	}
	m := rasterizer.Metrics{Advance: b.advance, MinX: b.minX, MaxX: b.maxX, MinY: b.minY, MaxY: b.maxY}
	if h.style.Has(rasterizer.StyleBold) {
		m.Advance++
	}
	return m, true
}

func (h *fakeHandle) RenderGlyph(r rune) (*image.Gray, error) {
	h.renders++
	m, ok := h.GlyphMetrics(r)
	if !ok {
		return nil, rasterizer.ErrNoGlyph
	}
	if h.tiny {
		return image.NewGray(image.Rect(0, 0, 1, 1)), nil
	}
	shift := max(0, -m.MinX)
	width := max(m.Advance, m.MaxX+shift, 1)
	top := -max(h.ascent, m.MaxY)
	bottom := max(h.descent, -m.MinY)
	underline := h.style.Has(rasterizer.StyleUnderline)
	if underline {
		bottom = max(bottom, h.barTop+h.barHeight)
	}

	surf := image.NewGray(image.Rect(0, top, width, bottom))
	if !m.Empty() {
		for y := -m.MaxY; y < -m.MinY; y++ {
			for x := m.MinX + shift; x < m.MaxX+shift; x++ {
				surf.Pix[surf.PixOffset(x, y)] = 0xff
			}
		}
	}
	if underline {
		for y := h.barTop; y < h.barTop+h.barHeight; y++ {
			for x := 0; x < width; x++ {
				surf.Pix[surf.PixOffset(x, y)] = 0xff
			}
		}
	}
	return surf, nil
}

func (h *fakeHandle) Kerning(a, b rune) int {
	if a == 'A' && b == 'V' {
		return -2
	}
	return 0
}

func (h *fakeHandle) LineSkip() int { return h.ascent + h.descent + 2 }
func (h *fakeHandle) Ascent() int   { return h.ascent }
func (h *fakeHandle) Descent() int  { return h.descent }

func (h *fakeHandle) Style() rasterizer.Style { return h.style }

func (h *fakeHandle) SetStyle(s rasterizer.Style) {
	h.styleCalls++
	h.style = s
}

func (h *fakeHandle) Outline() int { return h.outline }

func (h *fakeHandle) SetOutline(px int) {
	h.outlineCalls++
	h.outline = px
}

func (h *fakeHandle) Close() error {
	h.closed = true
	return nil
}

// fakeLoader opens fakeHandle values. Data equal to "bad" fails to load.
type fakeLoader struct {
	boxes   map[rune]fakeBox
	handles []*fakeHandle
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{boxes: map[rune]fakeBox{
		'A': {advance: 10, minX: 0, maxX: 10, minY: 0, maxY: 12},
		'B': {advance: 9, minX: 1, maxX: 9, minY: 0, maxY: 12},
		'g': {advance: 8, minX: 0, maxX: 8, minY: -3, maxY: 8},
		'j': {advance: 4, minX: -2, maxX: 3, minY: -3, maxY: 11},
		' ': {advance: 4},
		'W': {advance: 300, minX: 0, maxX: 300, minY: 0, maxY: 10},
	}}
}

var fakeFontData = []byte("fake font")

func (l *fakeLoader) Load(data []byte, size uint32) (rasterizer.Handle, error) {
	if string(data) == "bad" {
		return nil, errors.New("fake: cannot parse")
	}
	h := &fakeHandle{
		size:      size,
		boxes:     l.boxes,
		ascent:    12,
		descent:   4,
		barTop:    2,
		barHeight: 1,
	}
	l.handles = append(l.handles, h)
	return h, nil
}

// handle returns the most recent handle opened for size.
func (l *fakeLoader) handle(size uint32) *fakeHandle {
	for i := len(l.handles) - 1; i >= 0; i-- {
		if l.handles[i].size == size {
			return l.handles[i]
		}
	}
	return nil
}
