// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterizer

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FreeTypeLoader loads handles with github.com/golang/freetype/truetype.
// It only supports TrueType outlines.
type FreeTypeLoader struct {
	// Hinting selects the outline hinting. The zero value is font.HintingNone,
	// so NewFreeTypeLoader should be preferred.
	Hinting font.Hinting
}

// NewFreeTypeLoader returns a loader with full hinting.
func NewFreeTypeLoader() FreeTypeLoader {
	return FreeTypeLoader{Hinting: font.HintingFull}
}

// Load implements Loader.
func (l FreeTypeLoader) Load(data []byte, size uint32) (Handle, error) {
	return l.loadWithTables(data, size, nil)
}

func (l FreeTypeLoader) loadWithTables(data []byte, size uint32, tables *fontTables) (Handle, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rasterizer: parse truetype: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: l.Hinting,
	})

	if tables == nil {
		tables = parseFontTables(data)
	}
	hasGlyph := func(r rune) bool {
		return f.Index(r) != 0
	}
	return newFaceHandle(face, size, tables, hasGlyph), nil
}
