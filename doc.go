// Package toddcox is the root of a Todd-Coxeter coset enumeration
// engine for finite Coxeter groups.
//
// Given a presentation (n generators, each an involution, with
// braid relations (g_i g_j)^m = 1) and an optional set of subgroup
// generators, the engine builds the coset table of the subgroup H in
// the full group G — a dense table whose rows are cosets and whose
// columns are generators, from which |G:H| and the Schreier action of
// G on G/H fall out directly.
//
// Under the hood, the work is organized into small single-purpose
// packages:
//
//	coxeter/         — group presentations: generators and braid relations
//	coset/           — the coset table itself (dense, row-major, append-only)
//	reltable/        — per-relation scan-row bookkeeping (the Learner's working set)
//	toddcox/         — the Learner/Definer driver loop that closes the table
//	internal/parallel — the work-stealing pool the Learner fans its relations out to
//	groups/          — factory presentations for torus, hypercube, H4, E6, E7, E8
//	verify/          — independent post-solve sanity checks over a closed table
//	cmd/toddcox/     — a CLI driver that reports elapsed time and |G:H|
//
// A minimal enumeration of the order-4 torus group:
//
//	spec, err := groups.Torus(1)
//	tbl, err := toddcox.Solve(spec, nil)
//	tbl.Size() // 4
//
//	go get github.com/allemangd-uncc/hpc-toddcox
package toddcox
