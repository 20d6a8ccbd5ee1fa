// SPDX-License-Identifier: MIT
// Package reltable: RelTable — SoA scan-row storage for one relation.

package reltable

// RelTable holds every active scan row for one Coxeter relation slot
// (ab)^m, identified by its two generators GenA/GenB and relator length
// Length = 2m. A fresh scan row starts its backward frontier (EndIndex) at
// Length-1, the inclusive upper bound on unscanned word positions.
type RelTable struct {
	GenA, GenB int
	Length     int

	// Scan-row state, struct-of-arrays. Row k is
	// (Init[k], StartCoset[k], EndCoset[k], StartIndex[k], EndIndex[k]).
	Init       []int
	StartCoset []int
	EndCoset   []int
	StartIndex []int
	EndIndex   []int

	// CosetPos[c] is the row index whose Init == c, or -1 if c has no
	// live scan row in this relation. Grows lazily as cosets are defined.
	CosetPos []int
}

// gen returns the generator used at word position i: even -> GenA,
// odd -> GenB.
func (rt *RelTable) gen(i int) int {
	if i&1 == 0 {
		return rt.GenA
	}
	return rt.GenB
}

// NewRelTable creates an empty relation table for generators (a, b) and
// relator word length (2*m).
func NewRelTable(a, b, length int) *RelTable {
	return &RelTable{GenA: a, GenB: b, Length: length}
}

// NumRows returns the number of live scan rows.
func (rt *RelTable) NumRows() int { return len(rt.Init) }

// ensureCoset grows CosetPos so index c is addressable, filling new
// slots with -1 (no row).
func (rt *RelTable) ensureCoset(c int) {
	for len(rt.CosetPos) <= c {
		rt.CosetPos = append(rt.CosetPos, -1)
	}
}

// PosOf returns the row index whose Init == c, or -1 if none (or c has
// never been seen by this relation yet).
func (rt *RelTable) PosOf(c int) int {
	if c < 0 || c >= len(rt.CosetPos) {
		return -1
	}
	return rt.CosetPos[c]
}

// AppendScan appends a new scan row with Init = StartCoset = EndCoset = c,
// StartIndex = 0, EndIndex = Length-1, and records c's position.
// Complexity: amortized O(1).
func (rt *RelTable) AppendScan(c int) {
	rt.ensureCoset(c)
	k := len(rt.Init)
	rt.Init = append(rt.Init, c)
	rt.StartCoset = append(rt.StartCoset, c)
	rt.EndCoset = append(rt.EndCoset, c)
	rt.StartIndex = append(rt.StartIndex, 0)
	rt.EndIndex = append(rt.EndIndex, rt.Length-1)
	rt.CosetPos[c] = k
}

// Remove drops scan row k by swapping in the last row, in O(1). CosetPos
// is fixed up for both the row that moved and the row that was removed.
func (rt *RelTable) Remove(k int) error {
	n := len(rt.Init)
	if k < 0 || k >= n {
		return ErrNoSuchScan
	}
	last := n - 1
	removedInit := rt.Init[k]

	if k != last {
		rt.Init[k] = rt.Init[last]
		rt.StartCoset[k] = rt.StartCoset[last]
		rt.EndCoset[k] = rt.EndCoset[last]
		rt.StartIndex[k] = rt.StartIndex[last]
		rt.EndIndex[k] = rt.EndIndex[last]
		rt.CosetPos[rt.Init[k]] = k
	}

	rt.Init = rt.Init[:last]
	rt.StartCoset = rt.StartCoset[:last]
	rt.EndCoset = rt.EndCoset[:last]
	rt.StartIndex = rt.StartIndex[:last]
	rt.EndIndex = rt.EndIndex[:last]
	rt.CosetPos[removedInit] = -1
	return nil
}
