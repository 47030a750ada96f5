// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package atlas

import "errors"

var (
	// ErrAtlasFull is returned by Allocate when the rectangle would need the
	// atlas to grow beyond its configured maximum size.
	ErrAtlasFull = errors.New("atlas: maximum texture size reached")

	// ErrInvalidSize is returned by Allocate for non-positive dimensions.
	ErrInvalidSize = errors.New("atlas: rectangle dimensions must be positive")
)

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
