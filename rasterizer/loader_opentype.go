// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterizer

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// OpenTypeLoader loads handles with golang.org/x/image/font/opentype.
// It supports TrueType and CFF outlines.
type OpenTypeLoader struct {
	// Hinting selects the outline hinting. The zero value is font.HintingNone,
	// so NewOpenTypeLoader should be preferred.
	Hinting font.Hinting
}

// NewOpenTypeLoader returns a loader with full hinting, which keeps stems
// and baselines on pixel boundaries at small sizes.
func NewOpenTypeLoader() OpenTypeLoader {
	return OpenTypeLoader{Hinting: font.HintingFull}
}

// Load implements Loader.
func (l OpenTypeLoader) Load(data []byte, size uint32) (Handle, error) {
	return l.loadWithTables(data, size, nil)
}

func (l OpenTypeLoader) loadWithTables(data []byte, size uint32, tables *fontTables) (Handle, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rasterizer: parse opentype: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: l.Hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("rasterizer: create opentype face: %w", err)
	}

	if tables == nil {
		tables = parseFontTables(data)
	}
	var buf sfnt.Buffer
	hasGlyph := func(r rune) bool {
		idx, err := f.GlyphIndex(&buf, r)
		return err == nil && idx != 0
	}
	return newFaceHandle(face, size, tables, hasGlyph), nil
}
