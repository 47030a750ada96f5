// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterizer

import (
	"errors"
	"slices"
)

// HandleSet owns the bytes of one font and the handles opened from them,
// one per character size.
//
// HandleSet is not safe for concurrent use.
type HandleSet struct {
	data    []byte
	loader  Loader
	handles map[uint32]*sizedHandle

	// tables is parsed on the first open and shared by later sizes.
	tables       *fontTables
	tablesParsed bool
}

// sizedHandle remembers the last style applied to a handle so repeated
// requests with the same parameters do not touch the handle.
type sizedHandle struct {
	handle  Handle
	bold    bool
	outline int
}

// NewHandleSet creates a set over data. A nil loader selects DefaultLoader.
// The set keeps a reference to data, which must not be modified afterwards.
func NewHandleSet(data []byte, loader Loader) *HandleSet {
	if loader == nil {
		loader = MustLookup(DefaultLoader)
	}
	return &HandleSet{
		data:    data,
		loader:  loader,
		handles: make(map[uint32]*sizedHandle),
	}
}

// Data returns the font bytes.
func (s *HandleSet) Data() []byte {
	return s.data
}

// Get returns the handle for size, opening it on first use.
// Failed opens are not remembered, so a later call retries.
func (s *HandleSet) Get(size uint32) (Handle, error) {
	if sh, ok := s.handles[size]; ok {
		return sh.handle, nil
	}
	if size == 0 {
		return nil, ErrZeroSize
	}
	if len(s.data) == 0 {
		return nil, ErrEmptyData
	}
	h, err := s.load(size)
	if err != nil {
		return nil, err
	}
	s.handles[size] = &sizedHandle{handle: h}
	return h, nil
}

func (s *HandleSet) load(size uint32) (Handle, error) {
	tl, ok := s.loader.(tablesLoader)
	if !ok {
		return s.loader.Load(s.data, size)
	}
	if !s.tablesParsed {
		s.tables = parseFontTables(s.data)
		s.tablesParsed = true
	}
	return tl.loadWithTables(s.data, size, s.tables)
}

// ApplyBold switches the bold flag of the handle for size, if it is open
// and the flag differs from the last value applied.
func (s *HandleSet) ApplyBold(size uint32, bold bool) {
	sh, ok := s.handles[size]
	if !ok || sh.bold == bold {
		return
	}
	style := sh.handle.Style()
	if bold {
		style |= StyleBold
	} else {
		style &^= StyleBold
	}
	sh.handle.SetStyle(style)
	sh.bold = bold
}

// ApplyOutline sets the outline thickness of the handle for size, truncated
// to whole pixels, if it differs from the last value applied.
func (s *HandleSet) ApplyOutline(size uint32, thickness float32) {
	sh, ok := s.handles[size]
	if !ok {
		return
	}
	px := max(int(thickness), 0)
	if sh.outline == px {
		return
	}
	sh.handle.SetOutline(px)
	sh.outline = px
}

// Any returns an arbitrary open handle, preferring the smallest size.
func (s *HandleSet) Any() (Handle, bool) {
	sizes := s.Sizes()
	if len(sizes) == 0 {
		return nil, false
	}
	return s.handles[sizes[0]].handle, true
}

// Sizes returns the sizes with open handles in ascending order.
func (s *HandleSet) Sizes() []uint32 {
	sizes := make([]uint32, 0, len(s.handles))
	for size := range s.handles {
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)
	return sizes
}

// Len returns the number of open handles.
func (s *HandleSet) Len() int {
	return len(s.handles)
}

// Close closes every handle and releases the font bytes.
func (s *HandleSet) Close() error {
	var errs []error
	for size, sh := range s.handles {
		if err := sh.handle.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(s.handles, size)
	}
	s.data = nil
	s.tables = nil
	s.tablesParsed = false
	return errors.Join(errs...)
}
