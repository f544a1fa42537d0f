// Package postdom computes, for every vertex of a graphstore.GraphStore,
// the set of vertices that post-dominate it in the dependant -> dependency
// edge graph: every path from the vertex down to a sink passes through
// each member of its post-dominator set.
//
// A sink (no outgoing edges) post-dominates only itself, trivially, and is
// assigned the empty set. Every other vertex starts at the universal set
// (every vertex id) and is refined by a worklist iteration driven by the
// incoming edges of whichever vertex last changed, until a fixed point is
// reached. A vertex with a single successor carries that successor's
// post-dominator set plus the successor itself; a vertex with several
// successors carries the intersection of their post-dominator sets alone
// (the successors themselves are not added to the intersection — this
// matches the original build_nodePostDom exactly, including that
// asymmetry between the single- and multi-successor cases).
//
// Grounded on the original hase.py build_nodePostDom.
package postdom
