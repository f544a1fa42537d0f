// Package graphstore defines the Vertex, Edge, and GraphStore types that
// back the constraint-graph analyzer, and provides immutable construction
// primitives for building a GraphStore from a description or by deleting
// a vertex set from a parent.
//
// GraphStore and every index derived from it (topo.Index, idep.Map,
// postdom.Map, kinst.Index) are immutable once constructed: there is no
// method on GraphStore that mutates its adjacency after New or
// DeleteVertices returns. Subgraphs share no mutable state with their
// parent.
//
// Complexity: construction from a Description is O(V+E); DeleteVertices
// is O(V+E) in the parent's size.
package graphstore
