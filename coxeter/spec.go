// SPDX-License-Identifier: MIT
// Package coxeter: NewSpec — the sole constructor for Spec.

package coxeter

// NewSpec builds a Spec for n generators, applying the given pair
// multiplicities and defaulting every unconstrained pair to m = 2.
//
// Validation order (documented, enforced by tests): too-few-generators ->
// self-pair -> generator-range -> bad-multiplicity -> duplicate-pair.
// Complexity: O(n^2 + len(mults)).
func NewSpec(n int, mults []Mult) (*Spec, error) {
	if n < 1 {
		return nil, ErrTooFewGenerators
	}

	nrels := n * (n - 1) / 2
	mVals := make([]int, nrels)
	for r := range mVals {
		mVals[r] = 2 // default: commuting pair
	}
	seen := make([]bool, nrels)

	for _, m := range mults {
		i, j := m.I, m.J
		if i == j {
			return nil, ErrSelfPair
		}
		if i > j {
			i, j = j, i
		}
		if i < 0 || j >= n {
			return nil, ErrGeneratorRange
		}
		if m.M < 1 {
			return nil, ErrBadMultiplicity
		}
		slot := slotIndex(n, i, j)
		if seen[slot] {
			return nil, ErrDuplicatePair
		}
		seen[slot] = true
		mVals[slot] = m.M
	}

	s := &Spec{
		N: n,
		A: make([]int, nrels),
		B: make([]int, nrels),
		L: make([]int, nrels),
	}
	r := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s.A[r] = i
			s.B[r] = j
			s.L[r] = 2 * mVals[r]
			r++
		}
	}
	return s, nil
}
