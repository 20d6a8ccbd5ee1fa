// SPDX-License-Identifier: MIT
// Package verify: sentinel error set.

package verify

import "errors"

var (
	// ErrNotClosed indicates an entry below the table's row count is
	// still Undefined — the checks in this package assume Solve returned
	// a fully closed table.
	ErrNotClosed = errors.New("verify: table is not fully closed")

	// ErrInvolutionBroken indicates T[T[c,g],g] != c for some (c, g).
	ErrInvolutionBroken = errors.New("verify: involution invariant broken")

	// ErrRelatorOpen indicates some relator word failed to return to its
	// starting coset.
	ErrRelatorOpen = errors.New("verify: relator failed to close")

	// ErrDisconnected indicates some coset is unreachable from coset 0.
	ErrDisconnected = errors.New("verify: coset graph is disconnected")

	// ErrFixedPointBroken indicates a declared subgroup generator does
	// not fix coset 0.
	ErrFixedPointBroken = errors.New("verify: subgroup generator does not fix coset 0")
)
