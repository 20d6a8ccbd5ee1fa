// Package coxeter defines the immutable description of a Coxeter group
// presentation: a generator count and the pairwise braid relations between
// them.
//
// A Coxeter group is presented by involutive generators g_0 ... g_{n-1}
// with relations (g_i g_j)^m_ij = 1 for every pair i != j. Pairs with no
// explicit multiplicity default to m = 2, i.e. g_i and g_j commute.
//
// Spec is the only exported type; it is built once via NewSpec and never
// mutated afterward (methods are read-only). Relation slots are stored in
// three parallel arrays (A, B, L) rather than a slice of structs, so the
// enumeration engine's inner loops can stream through them without chasing
// pointers — the same cache-friendly layout the engine uses for its scan
// rows (see package reltable).
package coxeter
