// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/guifont"
)

// GlyphTable is the YAML description of a built atlas.
type GlyphTable struct {
	Name               string       `yaml:"name"`
	Size               uint32       `yaml:"size"`
	Bold               bool         `yaml:"bold,omitempty"`
	Outline            float32      `yaml:"outline,omitempty"`
	TextureSize        int          `yaml:"textureSize"`
	LineSpacing        float32      `yaml:"lineSpacing"`
	UnderlinePosition  float32      `yaml:"underlinePosition"`
	UnderlineThickness float32      `yaml:"underlineThickness"`
	Glyphs             []GlyphEntry `yaml:"glyphs"`
	Missing            []string     `yaml:"missing,omitempty"`
}

// GlyphEntry is one glyph of a GlyphTable.
type GlyphEntry struct {
	CodePoint   rune       `yaml:"codePoint"`
	Char        string     `yaml:"char"`
	Advance     float32    `yaml:"advance"`
	Bounds      [4]float32 `yaml:"bounds,flow"`
	TextureRect [4]int     `yaml:"textureRect,flow"`
}

// jobResult summarizes a finished job.
type jobResult struct {
	name        string
	glyphs      int
	missing     int
	textureSize int
	imagePath   string
	tablePath   string
}

// buildJob builds the atlas of job and writes it to outDir.
func buildJob(cfg Config, job Job, outDir string) (jobResult, error) {
	res := jobResult{name: job.Name}

	data, err := job.fontData()
	if err != nil {
		return res, err
	}
	f, err := guifont.New(cfg.fontOptions(job.Loader)...)
	if err != nil {
		return res, err
	}
	defer f.Close()
	if err := f.LoadFromMemory(data); err != nil {
		return res, err
	}

	table := GlyphTable{
		Name:    job.Name,
		Size:    job.Size,
		Bold:    job.Bold,
		Outline: job.Outline,
	}
	for _, r := range job.runes() {
		if !f.HasGlyph(r) {
			table.Missing = append(table.Missing, fmt.Sprintf("%U", r))
			continue
		}
		g := f.Glyph(r, job.Size, job.Bold, job.Outline)
		table.Glyphs = append(table.Glyphs, GlyphEntry{
			CodePoint:   r,
			Char:        string(r),
			Advance:     g.Advance,
			Bounds:      [4]float32{g.Bounds.Left, g.Bounds.Top, g.Bounds.Width, g.Bounds.Height},
			TextureRect: [4]int{g.TextureRect.Left, g.TextureRect.Top, g.TextureRect.Width, g.TextureRect.Height},
		})
	}

	// Upload once so the atlas is validated the way a renderer sees it.
	if _, err := f.Texture(job.Size); err != nil {
		return res, err
	}

	table.TextureSize = f.TextureSize()
	table.LineSpacing = f.LineSpacing(job.Size)
	table.UnderlinePosition = f.UnderlinePosition(job.Size)
	table.UnderlineThickness = f.UnderlineThickness(job.Size)

	res.glyphs = len(table.Glyphs)
	res.missing = len(table.Missing)
	res.textureSize = table.TextureSize
	res.imagePath = filepath.Join(outDir, job.Name+".png")
	res.tablePath = filepath.Join(outDir, job.Name+".glyphs.yml")

	if err := writePNG(res.imagePath, f); err != nil {
		return res, err
	}
	if err := writeTable(res.tablePath, &table); err != nil {
		return res, err
	}
	return res, nil
}

func writePNG(path string, f *guifont.Font) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()
	return png.Encode(out, f.Atlas().Image())
}

func writeTable(path string, table *GlyphTable) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(table); err != nil {
		return err
	}
	return enc.Close()
}
