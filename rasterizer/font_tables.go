// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterizer

import (
	"bytes"
	"math"

	gtfont "github.com/go-text/typesetting/font"
)

// underlineMetrics is the post-table underline scaled to a character size.
// Position is the top edge of the bar relative to the baseline, y up, so it
// is negative for bars below the baseline.
type underlineMetrics struct {
	Position  float32
	Thickness float32
}

// bar converts the metrics into a row offset (y down, relative to the
// baseline) and a height, both in whole pixels.
func (u underlineMetrics) bar() (top, height int) {
	offset := int(math.Floor(float64(u.Position)))
	height = max(1, int(math.Floor(float64(u.Thickness))))
	return -offset - 1, height
}

// fontTables holds what the backend reads from the font tables directly
// rather than through the rasterizer. Values are in font units, so one
// parse serves every character size.
type fontTables struct {
	upem               float32
	underlinePosition  float32
	underlineThickness float32
	hasGlyph           func(rune) bool
}

// parseFontTables parses data with go-text. It returns nil when go-text
// cannot read the font. The cmap lookup handles more subtable formats than
// the rasterizer parsers do.
func parseFontTables(data []byte) *fontTables {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return &fontTables{
		upem:               float32(face.Upem()),
		underlinePosition:  face.LineMetric(gtfont.UnderlinePosition),
		underlineThickness: face.LineMetric(gtfont.UnderlineThickness),
		hasGlyph: func(r rune) bool {
			gid, ok := face.NominalGlyph(r)
			return ok && gid != 0
		},
	}
}

// underline scales the post-table underline to size pixels per em. It
// returns nil when the font has no usable underline.
func (t *fontTables) underline(size uint32) *underlineMetrics {
	if t.upem <= 0 || t.underlineThickness <= 0 {
		return nil
	}
	scale := float32(size) / t.upem
	return &underlineMetrics{
		Position:  t.underlinePosition * scale,
		Thickness: t.underlineThickness * scale,
	}
}

// tablesLoader is implemented by loaders that accept font tables parsed
// ahead of time, which lets a HandleSet parse them once for all sizes.
type tablesLoader interface {
	loadWithTables(data []byte, size uint32, tables *fontTables) (Handle, error)
}
