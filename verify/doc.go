// Package verify provides independent, read-only sanity passes over a
// completed coset table, packaged
// for reuse by both tests and the CLI's optional -verify flag.
//
// original_source/cpu-opt/main.cpp trusts the enumeration algorithm
// unconditionally and only ever prints the final coset count; this
// package supplements that with the checks a complete implementation
// would run once before reporting success: every generator acts as an
// involution, every relator closes, and every coset is reachable from
// coset 0.
//
// CheckConnected treats the coset table as a Schreier graph — nodes are
// cosets, and each generator is an edge label connecting c to T[c,g] —
// and runs a breadth-first search from coset 0, generalizing
// katalvlaran/lvlath/bfs's queue-based walker from core.Graph neighbor
// iteration to the table's (coset, generator) -> coset edge function.
package verify
