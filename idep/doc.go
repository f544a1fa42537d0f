// Package idep computes the indirect depth of every vertex in a
// graphstore.GraphStore: the largest number of symbolic array-index
// (indirect) edges on any path that reaches the vertex from a vertex with
// no dependant.
//
// A vertex with no dependant (nothing points into it) has indirect depth
// zero. Every other vertex takes the maximum, over its incoming edges, of
// the dependant's depth (unchanged across a direct edge, +1 across an
// indirect edge) — propagated in reverse topological order so every
// dependant is resolved before the dependencies it points at.
//
// Grounded on the original hase.py calculate_idep/max_idep pair.
package idep
