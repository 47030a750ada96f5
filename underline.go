// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guifont

import "github.com/gogpu/guifont/rasterizer"

// underlineInfo is the underline geometry of one character size.
type underlineInfo struct {
	offset    int
	thickness int
}

// UnderlinePosition implements FontBackend.
func (f *Font) UnderlinePosition(size uint32) float32 {
	return float32(f.underlineInfo(size).offset)
}

// UnderlineThickness implements FontBackend.
func (f *Font) UnderlineThickness(size uint32) float32 {
	return float32(f.underlineInfo(size).thickness)
}

// underlineInfo measures the underline by rendering an underlined space and
// scanning its middle column from the bottom up. The result is memoized per
// size, except when no handle exists.
func (f *Font) underlineInfo(size uint32) underlineInfo {
	if info, ok := f.underlines[size]; ok {
		return info
	}

	h := f.handle(size)
	if h == nil {
		return underlineInfo{}
	}

	info := measureUnderline(h, size)
	f.underlines[size] = info
	return info
}

func measureUnderline(h rasterizer.Handle, size uint32) underlineInfo {
	old := h.Style()
	h.SetStyle(rasterizer.StyleUnderline)
	defer h.SetStyle(old)

	var info underlineInfo
	surface, err := h.RenderGlyph(' ')
	if err != nil {
		return info
	}

	b := surface.Bounds()
	x := b.Min.X + b.Dx()/2
	found := false
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		ink := surface.GrayAt(x, y).Y != 0
		if !found {
			if !ink {
				continue
			}
			found = true
		}
		if !ink {
			info.offset = y - b.Min.Y + 1 - int(size)
			break
		}
		info.thickness++
	}
	return info
}
