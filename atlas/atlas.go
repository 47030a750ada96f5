// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package atlas

import (
	"image"
	"math/bits"
	"strconv"
)

const (
	// DefaultSize is the initial side length of a new atlas.
	DefaultSize = 128

	// FirstRowTop is the y coordinate of the first row. Rows 0 to 2 hold
	// the reserved opaque block and a separating line.
	FirstRowTop = 3

	// minRowRatio and maxRowRatio bound the glyph/row height ratio for a
	// glyph to be placed in an existing row.
	minRowRatio = 0.7
	maxRowRatio = 1.0

	bytesPerPixel = 4
)

// Config configures a new Atlas.
type Config struct {
	// InitialSize is the starting side length. Zero selects DefaultSize.
	// Must be a power of two.
	InitialSize int

	// MaxSize caps growth. Zero means unbounded. Must be a power of two
	// not smaller than InitialSize.
	MaxSize int
}

// Validate checks the configuration.
func (c Config) Validate() error {
	initial := c.initialSize()
	if initial < 4 || !isPowerOfTwo(initial) {
		return &ConfigError{Field: "InitialSize", Reason: "must be a power of two of at least 4, got " + strconv.Itoa(initial)}
	}
	if c.MaxSize != 0 {
		if !isPowerOfTwo(c.MaxSize) {
			return &ConfigError{Field: "MaxSize", Reason: "must be a power of two, got " + strconv.Itoa(c.MaxSize)}
		}
		if c.MaxSize < initial {
			return &ConfigError{Field: "MaxSize", Reason: "must not be smaller than InitialSize"}
		}
	}
	return nil
}

func (c Config) initialSize() int {
	if c.InitialSize == 0 {
		return DefaultSize
	}
	return c.InitialSize
}

// Row is a horizontal shelf of the atlas.
type Row struct {
	Top    int // y of the first pixel row
	Height int // fixed when the row is created
	Width  int // used width, only grows
}

// Atlas is a square RGBA glyph bitmap with row-based space allocation.
//
// Atlas is not safe for concurrent use.
type Atlas struct {
	cfg     Config
	size    int
	pix     []byte
	rows    []Row
	nextRow int

	// version changes whenever pixels change, including growth.
	version uint64
}

// New creates an atlas of cfg.InitialSize with the reserved block drawn.
func New(cfg Config) (*Atlas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Atlas{cfg: cfg}
	a.Reset()
	return a, nil
}

// Reset drops every row and returns the atlas to its initial state.
func (a *Atlas) Reset() {
	a.size = a.cfg.initialSize()
	a.pix = newTransparent(a.size)
	a.rows = a.rows[:0]
	a.nextRow = FirstRowTop

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			a.pix[(y*a.size+x)*bytesPerPixel+3] = 0xff
		}
	}
	a.version++
}

// Size returns the side length in pixels.
func (a *Atlas) Size() int {
	return a.size
}

// MaxSize returns the configured growth limit, 0 when unbounded.
func (a *Atlas) MaxSize() int {
	return a.cfg.MaxSize
}

// Pix returns the RGBA pixels, row-major with a stride of 4*Size().
// The slice is replaced when the atlas grows and must not be retained.
func (a *Atlas) Pix() []byte {
	return a.pix
}

// Rows returns a copy of the rows in creation order.
func (a *Atlas) Rows() []Row {
	rows := make([]Row, len(a.rows))
	copy(rows, a.rows)
	return rows
}

// NextRowTop returns the y coordinate where the next row would be opened.
func (a *Atlas) NextRowTop() int {
	return a.nextRow
}

// Version returns a counter that changes with every pixel modification.
func (a *Atlas) Version() uint64 {
	return a.version
}

// Allocate reserves a width×height rectangle.
//
// The row with the highest height ratio in [0.7, 1.0] that still has room
// is used; among equal ratios the earliest row wins. Otherwise a new row of
// height + height/10 is opened, growing the atlas first if it would touch
// the bottom edge or if width is not smaller than the side length.
func (a *Atlas) Allocate(width, height int) (IntRect, error) {
	if width <= 0 || height <= 0 {
		return IntRect{}, ErrInvalidSize
	}

	best := -1
	var bestRatio float32
	for i := range a.rows {
		row := &a.rows[i]
		ratio := float32(height) / float32(row.Height)
		if ratio < minRowRatio || ratio > maxRowRatio {
			continue
		}
		if width > a.size-row.Width {
			continue
		}
		if best >= 0 && ratio <= bestRatio {
			continue
		}
		best = i
		bestRatio = ratio
	}

	if best < 0 {
		rowHeight := height + height/10
		size := a.size
		for a.nextRow+rowHeight >= size || width >= size {
			size *= 2
		}
		if a.cfg.MaxSize != 0 && size > a.cfg.MaxSize {
			return IntRect{}, ErrAtlasFull
		}
		if size != a.size {
			a.grow(size)
		}

		a.rows = append(a.rows, Row{Top: a.nextRow, Height: rowHeight})
		a.nextRow += rowHeight
		best = len(a.rows) - 1
	}

	row := &a.rows[best]
	r := IntRect{Left: row.Width, Top: row.Top, Width: width, Height: height}
	row.Width += width
	return r, nil
}

// grow reallocates the buffer at size, keeping the old pixels in the
// top-left quadrant. Everything else is transparent white.
func (a *Atlas) grow(size int) {
	pix := newTransparent(size)
	oldStride := a.size * bytesPerPixel
	newStride := size * bytesPerPixel
	for y := 0; y < a.size; y++ {
		copy(pix[y*newStride:y*newStride+oldStride], a.pix[y*oldStride:(y+1)*oldStride])
	}
	a.pix = pix
	a.size = size
	a.version++
}

// Blit writes the coverage of src, starting at sp, into the alpha channel
// of dst. Parts of dst outside the atlas or outside src are skipped.
func (a *Atlas) Blit(dst IntRect, src *image.Gray, sp image.Point) {
	if dst.Empty() {
		return
	}
	clip := dst.Image().Intersect(image.Rect(0, 0, a.size, a.size))
	srcBounds := src.Bounds()
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		sy := sp.Y + y - dst.Top
		if sy < srcBounds.Min.Y || sy >= srcBounds.Max.Y {
			continue
		}
		for x := clip.Min.X; x < clip.Max.X; x++ {
			sx := sp.X + x - dst.Left
			if sx < srcBounds.Min.X || sx >= srcBounds.Max.X {
				continue
			}
			a.pix[(y*a.size+x)*bytesPerPixel+3] = src.Pix[src.PixOffset(sx, sy)]
		}
	}
	a.version++
}

// IsTransparentPixel reports whether the pixel at (x, y) has zero alpha.
// Pixels outside the atlas are transparent.
func (a *Atlas) IsTransparentPixel(x, y int) bool {
	if x < 0 || y < 0 || x >= a.size || y >= a.size {
		return true
	}
	return a.pix[(y*a.size+x)*bytesPerPixel+3] == 0
}

// Image returns a copy of the atlas as an image.
func (a *Atlas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, a.size, a.size))
	copy(img.Pix, a.pix)
	return img
}

func newTransparent(size int) []byte {
	pix := make([]byte, size*size*bytesPerPixel)
	for i := 0; i < len(pix); i += bytesPerPixel {
		pix[i] = 0xff
		pix[i+1] = 0xff
		pix[i+2] = 0xff
	}
	return pix
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
