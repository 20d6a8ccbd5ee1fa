// SPDX-License-Identifier: MIT
// Package toddcox: sentinel error set.

package toddcox

import "errors"

var (
	// ErrSubgenRange indicates a subgroup generator index passed to Solve
	// was outside [0, spec.N).
	ErrSubgenRange = errors.New("toddcox: subgroup generator out of range")

	// ErrCosetLimitExceeded indicates the table grew past WithMaxCosets
	// before closing — the external bound callers are expected to
	// enforce for presentations that may be infinite-index.
	ErrCosetLimitExceeded = errors.New("toddcox: coset limit exceeded")
)
