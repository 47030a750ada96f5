// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package atlas

import "image"

// IntRect is an axis-aligned rectangle in atlas pixels.
type IntRect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Empty reports whether the rectangle has no area.
func (r IntRect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the exclusive right edge.
func (r IntRect) Right() int {
	return r.Left + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r IntRect) Bottom() int {
	return r.Top + r.Height
}

// Inset shrinks the rectangle by n pixels on every side.
func (r IntRect) Inset(n int) IntRect {
	return IntRect{
		Left:   r.Left + n,
		Top:    r.Top + n,
		Width:  r.Width - 2*n,
		Height: r.Height - 2*n,
	}
}

// Overlaps reports whether r and s share any pixel.
func (r IntRect) Overlaps(s IntRect) bool {
	return r.Image().Overlaps(s.Image())
}

// Image converts the rectangle to an image.Rectangle.
func (r IntRect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right(), r.Bottom())
}
