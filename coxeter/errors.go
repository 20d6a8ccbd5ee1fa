// SPDX-License-Identifier: MIT
// Package coxeter: sentinel error set.
//
// All constructor-time validation failures are reported through these
// sentinels. Callers compare with errors.Is; messages are never wrapped
// with %w at the definition site (teacher convention, see
// katalvlaran/lvlath/matrix/errors.go).

package coxeter

import "errors"

var (
	// ErrTooFewGenerators indicates n < 1 was passed to NewSpec.
	ErrTooFewGenerators = errors.New("coxeter: need at least one generator")

	// ErrGeneratorRange indicates a relation referenced a generator index
	// outside [0, n).
	ErrGeneratorRange = errors.New("coxeter: generator index out of range")

	// ErrBadMultiplicity indicates a pair multiplicity m < 1 was supplied.
	// m == 1 is legal and degenerate: it forces the pair's two generators
	// equal (g_i = g_j), which torus presentations at resolution 1 rely on.
	ErrBadMultiplicity = errors.New("coxeter: multiplicity must be >= 1")

	// ErrDuplicatePair indicates the same unordered generator pair was
	// constrained more than once.
	ErrDuplicatePair = errors.New("coxeter: duplicate generator pair")

	// ErrSelfPair indicates a relation named i == j; every generator is
	// already an involution by construction and needs no pair relation
	// with itself.
	ErrSelfPair = errors.New("coxeter: generator paired with itself")
)
