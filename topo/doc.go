// Package topo assigns each vertex of a graphstore.GraphStore an integer
// such that a dependency (operand) always carries a strictly smaller
// number than its dependant (operator). Equivalently: the post-order of a
// DFS forest over the "dependant -> dependency" edges.
//
// Computation uses an explicit work stack rather than recursion (spec
// Design Note: "all traversals in the source use explicit work-stacks to
// avoid stack depth issues on large graphs"), with first-visit marking on
// push and finalization on pop — the same worklist shape as the original
// hase.py topological_sort.
//
// Complexity: O(V+E) time, O(V) memory.
package topo
