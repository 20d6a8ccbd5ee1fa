// Package groups provides canonical Coxeter group presentations —
// the torus and hypercube families, and the exceptional/H4 finite
// reflection groups — as a set of deterministic factory functions
// returning a *coxeter.Spec.
//
// This mirrors katalvlaran/lvlath/builder's Constructor pattern: builder
// assembles a *core.Graph from named topology constructors (Star, Grid,
// PlatonicSolid, ...); groups assembles a *coxeter.Spec the same way,
// adapted to a domain with no graph to mutate — each factory here simply
// returns a value rather than writing into a shared target.
//
// FromTag dispatches on the integer group-tag convention from the CLI
// surface: 0=torus(res), 1=H4, 2=E6, 3=E7, 4=E8,
// 5=hypercube(dim).
package groups
