// SPDX-License-Identifier: MIT
// Package verify: property checks over a completed coset table.

package verify

import (
	"fmt"

	"github.com/allemangd-uncc/hpc-toddcox/coset"
	"github.com/allemangd-uncc/hpc-toddcox/coxeter"
)

// CheckInvolution verifies that for every coset c and
// generator g, T[T[c,g],g] == c.
// Complexity: O(C*n).
func CheckInvolution(tbl *coset.Table) error {
	for c := 0; c < tbl.Size(); c++ {
		for g := 0; g < tbl.NGens(); g++ {
			d := tbl.Get(c, g)
			if d == coset.Undefined {
				return fmt.Errorf("verify: T[%d,%d] undefined: %w", c, g, ErrNotClosed)
			}
			if back := tbl.Get(d, g); back != c {
				return fmt.Errorf("verify: T[T[%d,%d],%d]=%d, want %d: %w", c, g, g, back, c, ErrInvolutionBroken)
			}
		}
	}
	return nil
}

// CheckClosure verifies that for every relation and every
// coset, applying the alternating word a b a b ... of length L returns to
// the starting coset.
// Complexity: O(R*C*avg(L)).
func CheckClosure(tbl *coset.Table, spec *coxeter.Spec) error {
	for r := 0; r < spec.NRels(); r++ {
		a, b, l := spec.Rel(r)
		gens := [2]int{a, b}
		for c := 0; c < tbl.Size(); c++ {
			cur := c
			for i := 0; i < l; i++ {
				cur = tbl.Get(cur, gens[i&1])
				if cur == coset.Undefined {
					return fmt.Errorf("verify: relator (%d %d)^%d from coset %d: %w", a, b, l/2, c, ErrNotClosed)
				}
			}
			if cur != c {
				return fmt.Errorf("verify: relator (%d %d)^%d from coset %d ended at %d: %w", a, b, l/2, c, cur, ErrRelatorOpen)
			}
		}
	}
	return nil
}

// CheckConnected verifies that every coset is reachable from coset 0 by
// some word in the generators — i.e. the coset table, viewed as a
// Schreier graph, is connected. A breadth-first search from coset 0
// following every generator edge should visit exactly Size() cosets.
// Complexity: O(C*n), O(C) memory for the visited set and queue.
func CheckConnected(tbl *coset.Table) error {
	n := tbl.Size()
	if n == 0 {
		return nil
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	visited[0] = true
	queue = append(queue, 0)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for g := 0; g < tbl.NGens(); g++ {
			next := tbl.Get(cur, g)
			if next == coset.Undefined || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	for c, ok := range visited {
		if !ok {
			return fmt.Errorf("verify: coset %d unreachable from coset 0: %w", c, ErrDisconnected)
		}
	}
	return nil
}

// CheckFixedPoints verifies that every declared subgroup
// generator fixes coset 0.
func CheckFixedPoints(tbl *coset.Table, subgens []int) error {
	for _, g := range subgens {
		if tbl.Get(0, g) != 0 {
			return fmt.Errorf("verify: generator %d: %w", g, ErrFixedPointBroken)
		}
	}
	return nil
}

// All runs every check in this package against a completed table and its
// generating spec, short-circuiting on the first failure.
func All(tbl *coset.Table, spec *coxeter.Spec, subgens []int) error {
	if err := CheckInvolution(tbl); err != nil {
		return err
	}
	if err := CheckClosure(tbl, spec); err != nil {
		return err
	}
	if err := CheckConnected(tbl); err != nil {
		return err
	}
	return CheckFixedPoints(tbl, subgens)
}
