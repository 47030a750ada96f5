// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/guifont"
)

// Config holds settings shared by all jobs.
type Config struct {
	// Loader is the default rasterizer loader name.
	Loader string `toml:"loader"`

	// Smooth sets texture smoothing. Nil keeps the font default.
	Smooth *bool `toml:"smooth"`

	// InitialTextureSize is the initial atlas side length. 0 keeps the
	// default.
	InitialTextureSize int `toml:"initial_texture_size"`

	// MaxTextureSize caps atlas growth. 0 means unbounded.
	MaxTextureSize int `toml:"max_texture_size"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// loadConfig reads a TOML config from path. An empty path returns the
// zero config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := cfg.level(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// level parses LogLevel. An empty level means warn.
func (c Config) level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// fontOptions converts the config into font options. loader overrides
// Config.Loader when not empty.
func (c Config) fontOptions(loader string) []guifont.Option {
	var opts []guifont.Option
	if loader == "" {
		loader = c.Loader
	}
	if loader != "" {
		opts = append(opts, guifont.WithLoader(loader))
	}
	if c.Smooth != nil {
		opts = append(opts, guifont.WithSmooth(*c.Smooth))
	}
	if c.InitialTextureSize > 0 {
		opts = append(opts, guifont.WithInitialTextureSize(c.InitialTextureSize))
	}
	if c.MaxTextureSize > 0 {
		opts = append(opts, guifont.WithMaxTextureSize(c.MaxTextureSize))
	}
	return opts
}
