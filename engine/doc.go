// Package engine bundles a graphstore.GraphStore together with the
// indices derived from it (topological order, indirect depth,
// post-dominator sets, kinst index) into a single Graph value, computed
// once and shared read-only by every later analysis stage. It mirrors the
// original PyGraph, which computed the same four indices in its
// constructor and never recomputed them during the rest of the analysis.
package engine
