// SPDX-License-Identifier: MIT
// Package toddcox: the Definer — allocates a new coset when learning stalls.

package toddcox

import (
	"github.com/allemangd-uncc/hpc-toddcox/coset"
	"github.com/allemangd-uncc/hpc-toddcox/reltable"
)

// terminal is returned by define once the table has closed: every
// (coset, generator) slot below the current row count is defined.
const terminal = -1

// define scans tbl in row-major order starting at (hint, 0) for the
// first Undefined slot (c*, g*). If found, it allocates a new coset,
// appends a scan row to every relation table for it, records the
// involution deduction T[c*,g*] = new and T[new,g*] = c*, and returns c*
// as the new scan_hint (not c*+1: c* may still have
// further undefined columns to its right).
//
// If no undefined slot exists below tbl.Size(), returns terminal.
func define(tbl *coset.Table, tables []*reltable.RelTable, hint int) int {
	n := tbl.NGens()
	for c := hint; c < tbl.Size(); c++ {
		for g := 0; g < n; g++ {
			if tbl.Get(c, g) != coset.Undefined {
				continue
			}

			newCoset := tbl.AppendRow()
			for _, rt := range tables {
				rt.AppendScan(newCoset)
			}
			_ = tbl.Set(c, g, newCoset)
			_ = tbl.Set(newCoset, g, c)

			return c
		}
	}
	return terminal
}
