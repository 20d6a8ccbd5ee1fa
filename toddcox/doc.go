// Package toddcox implements the Todd-Coxeter coset enumeration engine
// specialized to Coxeter presentations: it alternates a Learner phase
// (scan every relation as far as possible, recording deductions) and a
// Definer phase (allocate one new coset from the first undefined slot)
// until the coset table closes.
//
// What
//
//   - Solve(spec, subgens, opts...) runs the full enumeration and returns
//     the completed *coset.Table. Table.Size() is the resulting coset
//     count — the group order when subgens is empty.
//   - Options configure the worker pool size (WithWorkers), an external
//     cancellation/size bound (WithContext, WithMaxCosets), matching
//     the requirement that callers — not the engine — bound
//     potentially-infinite presentations.
//
// Why
//
//   - Classical Todd-Coxeter must fold coincident cosets by rewriting the
//     table. This engine avoids that machinery entirely: because every
//     Coxeter relator is a palindrome, a two-ended scan from the smaller
//     of two cosets always subsumes the larger one's scan, so the larger
//     one's scan row is simply dropped (see learner.go). No coincidence
//     ever needs to be recorded against the table.
//
// Determinism
//
//	The final table, as a function (c, g) -> c', does not depend on
//	relation-processing order or worker count. Coset *indices* depend
//	only on the Definer's deterministic row-major scan from scan_hint,
//	which is independent of how many workers ran the preceding Learner
//	pass — so two runs with different WithWorkers values produce
//	byte-identical tables.
package toddcox
