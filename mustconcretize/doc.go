// Package mustconcretize computes, for a single target vertex, the
// cheapest set of vertex ids whose recording would collectively
// concretize it.
//
// Computed iteratively via DFS with a visited set on first touch and
// finalization on second touch, memoized per (vertex id,
// config.Config.AllowPointer).
// Post-dominator sets de-duplicate candidates whose recording is
// subsumed by another candidate already in the set.
//
// Grounded on the original hase.py MustConcretize.
package mustconcretize
