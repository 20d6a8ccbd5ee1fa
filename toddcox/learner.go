// SPDX-License-Identifier: MIT
// Package toddcox: the Learner — scans every relation as far as it can go.

package toddcox

import (
	"github.com/allemangd-uncc/hpc-toddcox/coset"
	"github.com/allemangd-uncc/hpc-toddcox/internal/parallel"
	"github.com/allemangd-uncc/hpc-toddcox/reltable"
)

// learn runs one Learner pass over every relation table, recording every
// deduction it can reach into tbl and removing saturated/pruned scan
// rows. Relations own disjoint scan rows and write to disjoint (or
// idempotently duplicate) table slots, so they may run concurrently;
// workers bounds how many goroutines package internal/parallel may use.
func learn(tables []*reltable.RelTable, tbl *coset.Table, workers int) {
	parallel.Run(len(tables), workers, func(r int) {
		learnOne(tables[r], tbl)
	})
}

// learnOne advances every scan row of one relation table as far as
// possible against tbl:
//
//  1. Forward scan: walk the frontier while the next table entry is
//     defined. Any coset reached that is strictly greater than this
//     row's init coset has its own scan row in this relation dropped —
//     a structural pruning trick: because every relator
//     is a palindrome, the smaller-init row's two-ended scan always
//     subsumes the larger one's, so the larger row's work is redundant.
//  2. Backward scan: the mirror image, retreating the trailing frontier.
//  3. Closure: when the two frontiers meet, the next generator in the
//     word is forced; write both directions of that deduction
//     (generators are involutions) and retire the row.
//
// A row is identified by its init coset rather than by its current slot
// index: pruning elsewhere in the same pass (or this row's own closure)
// can relocate or delete any row via RelTable's swap-with-last removal,
// so looking it up by coset id — rather than trusting a loop index that
// may now name a different row — is what keeps this safe to call
// without risking a stale write. If a row disappears out from under this
// function (because some other row's scan reached this row's init and
// pruned it as redundant), the remaining write-back is simply skipped:
// the row's closure, if any, is already durably recorded in tbl by
// whichever scan reached it first.
func learnOne(rt *reltable.RelTable, tbl *coset.Table) {
	gens := [2]int{rt.GenA, rt.GenB}

	for c := 0; c < rt.NumRows(); c++ {
		initC := rt.Init[c]
		sIdx, eIdx := rt.StartIndex[c], rt.EndIndex[c]
		sCos, eCos := rt.StartCoset[c], rt.EndCoset[c]

		for sIdx < eIdx {
			next := tbl.Get(sCos, gens[sIdx&1])
			if next == coset.Undefined {
				break
			}
			sIdx++
			sCos = next
			if sCos > initC {
				if idx := rt.PosOf(sCos); idx >= 0 {
					_ = rt.Remove(idx)
				}
			}
		}

		for sIdx < eIdx {
			next := tbl.Get(eCos, gens[eIdx&1])
			if next == coset.Undefined {
				break
			}
			eIdx--
			eCos = next
			if eCos > initC {
				if idx := rt.PosOf(eCos); idx >= 0 {
					_ = rt.Remove(idx)
				}
			}
		}

		if sIdx == eIdx {
			g := gens[sIdx&1]
			_ = tbl.Set(sCos, g, eCos)
			_ = tbl.Set(eCos, g, sCos)
			if idx := rt.PosOf(initC); idx >= 0 {
				_ = rt.Remove(idx)
			}
			c-- // a row left slot c (or was never there); revisit it
			continue
		}

		if idx := rt.PosOf(initC); idx >= 0 {
			rt.StartIndex[idx], rt.StartCoset[idx] = sIdx, sCos
			rt.EndIndex[idx], rt.EndCoset[idx] = eIdx, eCos
		}
	}
}
