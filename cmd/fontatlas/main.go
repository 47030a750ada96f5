// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command fontatlas builds glyph atlases from a YAML job list.
//
// Usage:
//
//	fontatlas -jobs atlas.yml -out build [-config fontatlas.toml]
//
// For every job it writes <name>.png with the atlas bitmap and
// <name>.glyphs.yml with the glyph table.
//
// A job file looks like:
//
//	- name: body
//	  size: 16
//	  characterRanges:
//	    - [" ", "~"]
//	- name: title
//	  font: fonts/Title.ttf
//	  size: 32
//	  bold: true
//	  outline: 1.5
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/gogpu/guifont"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "fontatlas: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fontatlas", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		jobsPath   = fs.String("jobs", "atlas.yml", "YAML job list")
		outDir     = fs.String("out", ".", "output directory")
		configPath = fs.String("config", "", "optional TOML config")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	level, _ := cfg.level()
	guifont.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	jobs, err := readJobs(*jobsPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	out := termenv.NewOutput(stdout)
	var failed int
	for _, job := range jobs {
		res, err := buildJob(cfg, job, *outDir)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", out.String("FAIL").Foreground(out.Color("1")).Bold(), job.Name, err)
			continue
		}
		report(out, res)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(jobs))
	}
	return nil
}

// report prints one summary line for a finished job.
func report(out *termenv.Output, res jobResult) {
	status := out.String("ok").Foreground(out.Color("2")).Bold()
	fmt.Fprintf(out, "%s   %s  %d glyphs  %dx%d  %s\n",
		status, res.name, res.glyphs, res.textureSize, res.textureSize, res.imagePath)
	if res.missing > 0 {
		warn := out.String(fmt.Sprintf("%d characters missing from font", res.missing))
		fmt.Fprintf(out, "     %s\n", warn.Foreground(out.Color("3")))
	}
}
