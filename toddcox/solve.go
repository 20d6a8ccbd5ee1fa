// SPDX-License-Identifier: MIT
// Package toddcox: Solve — the Driver that alternates Learner and Definer.

package toddcox

import (
	"github.com/allemangd-uncc/hpc-toddcox/coset"
	"github.com/allemangd-uncc/hpc-toddcox/coxeter"
	"github.com/allemangd-uncc/hpc-toddcox/reltable"
)

// Solve enumerates the cosets of spec by the subgroup generated by the
// involutions named in subgens (each a generator index written as a
// self-loop T[0, g] = 0), returning the completed coset table. An empty
// subgens enumerates by the trivial subgroup, so Table.Size() is the
// group order.
//
// In outline:
//
//	init coset table with row 0
//	for each subgroup generator g: T[0, g] = 0
//	add one scan row per relation for coset 0
//	hint <- 0
//	loop:
//	    learn()
//	    hint <- define(hint)
//	    if hint is terminal: break
//	return coset table
//
// Only single-generator subgroup words are supported;
// general word-subgroups are out of scope.
func Solve(spec *coxeter.Spec, subgens []int, opts ...Option) (*coset.Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for _, g := range subgens {
		if g < 0 || g >= spec.N {
			return nil, ErrSubgenRange
		}
	}

	tbl := coset.NewTable(spec.N)
	tables := make([]*reltable.RelTable, spec.NRels())
	for r := range tables {
		a, b, length := spec.Rel(r)
		tables[r] = reltable.NewRelTable(a, b, length)
	}

	tbl.AppendRow() // coset 0
	for r := range tables {
		tables[r].AppendScan(0)
	}
	for _, g := range subgens {
		_ = tbl.Set(0, g, 0)
	}

	hint := 0
	for hint != terminal {
		select {
		case <-o.ctx.Done():
			return tbl, o.ctx.Err()
		default:
		}

		learn(tables, tbl, o.workers)

		if o.maxCosets > 0 && tbl.Size() > o.maxCosets {
			return tbl, ErrCosetLimitExceeded
		}

		hint = define(tbl, tables, hint)
	}

	return tbl, nil
}
