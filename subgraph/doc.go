// Package subgraph builds a derived engine.Graph by deleting a vertex set
// from a parent GraphStore: surviving vertices and edges are recomputed
// into fresh topological, indirect-depth, and kinst indices, while the
// parent's post-dominator map is carried through unchanged (deletion only
// shrinks successor sets, so it remains a valid over-approximation).
//
// Grounded on the original PyGraph.buildFromPyGraph.
package subgraph
