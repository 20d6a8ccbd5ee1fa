// SPDX-License-Identifier: MIT
// Package coset: sentinel error set.

package coset

import "errors"

var (
	// ErrIndexOutOfRange indicates a (coset, generator) pair addressed a
	// slot outside the table's current bounds.
	ErrIndexOutOfRange = errors.New("coset: index out of range")

	// ErrCoincidence indicates Set was asked to overwrite an already-defined
	// slot with a different value. The enumeration engine's coincidence-free
	// policy means this should never be observed in practice;
	// the sentinel exists so Table stays correct even if a future caller
	// relaxes that policy.
	ErrCoincidence = errors.New("coset: coincidence detected")
)
