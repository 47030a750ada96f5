// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"gopkg.in/yaml.v3"
)

// Job describes one atlas to build.
type Job struct {
	Name    string  `yaml:"name"`
	Font    string  `yaml:"font"`
	Loader  string  `yaml:"loader"`
	Size    uint32  `yaml:"size"`
	Bold    bool    `yaml:"bold"`
	Outline float32 `yaml:"outline"`

	// CharacterRanges lists inclusive [first, last] character pairs.
	CharacterRanges [][2]string `yaml:"characterRanges"`
}

// readJobs reads a YAML list of jobs from path. Relative font paths are
// resolved against the directory of path.
func readJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var jobs []Job
	if err := yaml.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("jobs %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	seen := make(map[string]bool, len(jobs))
	for i := range jobs {
		j := &jobs[i]
		if err := j.validate(); err != nil {
			return nil, fmt.Errorf("jobs %s: job %d: %w", path, i, err)
		}
		if seen[j.Name] {
			return nil, fmt.Errorf("jobs %s: duplicate job name %q", path, j.Name)
		}
		seen[j.Name] = true
		if j.Font != "" && !filepath.IsAbs(j.Font) {
			j.Font = filepath.Join(dir, j.Font)
		}
	}
	return jobs, nil
}

func (j *Job) validate() error {
	switch {
	case j.Name == "":
		return errors.New("missing name")
	case j.Name != filepath.Base(j.Name) || j.Name == "." || j.Name == "..":
		return fmt.Errorf("name %q must be a plain file name", j.Name)
	case j.Size == 0:
		return fmt.Errorf("%s: size must be positive", j.Name)
	case j.Outline < 0:
		return fmt.Errorf("%s: outline must not be negative", j.Name)
	}
	if _, err := runeRanges(j.CharacterRanges); err != nil {
		return fmt.Errorf("%s: %w", j.Name, err)
	}
	return nil
}

// fontData returns the font bytes of the job. An empty font selects
// Latin Modern Roman.
func (j *Job) fontData() ([]byte, error) {
	if j.Font == "" {
		return lmroman10regular.TTF, nil
	}
	return os.ReadFile(j.Font)
}

// runes returns the sorted characters of the job. Without ranges the
// printable ASCII set is used.
func (j *Job) runes() []rune {
	ranges := j.CharacterRanges
	if len(ranges) == 0 {
		ranges = [][2]string{{" ", "~"}}
	}
	runes, _ := runeRanges(ranges)
	return runes
}

// runeRanges expands inclusive character ranges into a sorted set.
func runeRanges(ranges [][2]string) ([]rune, error) {
	set := make(map[rune]struct{})
	for _, rr := range ranges {
		first, err := singleRune(rr[0])
		if err != nil {
			return nil, err
		}
		last, err := singleRune(rr[1])
		if err != nil {
			return nil, err
		}
		if last < first {
			return nil, fmt.Errorf("range %q-%q is reversed", rr[0], rr[1])
		}
		for r := first; r <= last; r++ {
			set[r] = struct{}{}
		}
	}

	runes := make([]rune, 0, len(set))
	for r := range set {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes, nil
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("range bound %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("range bound %q is not valid UTF-8", s)
	}
	return r, nil
}
