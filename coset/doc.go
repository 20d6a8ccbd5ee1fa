// Package coset implements the Coset Table: a dense, row-major
// (coset, generator) -> coset mapping that is both the working state and
// the final output of coset enumeration.
//
// Layout mirrors katalvlaran/lvlath/matrix's flat Dense matrix: a single
// backing slice, row-major, grown by whole rows as new cosets are
// defined. Unlike Dense, Table never shrinks and never overwrites a
// defined entry — append is the only way the row count grows, and Set is
// only ever called on an UNDEFINED slot or to rewrite the same value
// (the engine's coincidence-free policy, see package toddcox).
//
// Table itself holds no lock. The driver (package toddcox) is the sole
// owner of a Table for the duration of one solve; during a single
// Learner pass several goroutines may call Set concurrently, but only on
// disjoint slots in a correct run, so no synchronization is needed
// beyond the sync.WaitGroup join between the Learner and Definer phases.
package coset

// Undefined is the sentinel value for a (coset, generator) slot that has
// not yet been determined.
const Undefined = -1
