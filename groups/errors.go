// SPDX-License-Identifier: MIT
// Package groups: sentinel error set.

package groups

import "errors"

var (
	// ErrInvalidResolution indicates Torus was called with res < 1.
	ErrInvalidResolution = errors.New("groups: torus resolution must be >= 1")

	// ErrInvalidDimension indicates Hypercube was called with dim < 2.
	ErrInvalidDimension = errors.New("groups: hypercube dimension must be >= 2")

	// ErrUnknownTag indicates FromTag received a tag outside [0,5].
	ErrUnknownTag = errors.New("groups: unknown group tag")
)
