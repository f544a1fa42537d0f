package engine

import (
	"hase/graphstore"
	"hase/idep"
	"hase/kinst"
	"hase/postdom"
	"hase/topo"
)

// Graph is a GraphStore plus the indices every later analysis stage reads:
// topological order, indirect depth, post-dominator sets, and the kinst
// index. All four are computed once by Build and never recomputed.
type Graph struct {
	Store   *graphstore.GraphStore
	Topo    *topo.Index
	IDep    *idep.Map
	PostDom *postdom.Map
	KInst   *kinst.Index
}

// Build computes every derived index of store and bundles them with it.
func Build(store *graphstore.GraphStore) (*Graph, error) {
	topoIdx := topo.Compute(store)
	idepMap, err := idep.Compute(store, topoIdx)
	if err != nil {
		return nil, err
	}

	return &Graph{
		Store:   store,
		Topo:    topoIdx,
		IDep:    idepMap,
		PostDom: postdom.Compute(store),
		KInst:   kinst.Compute(store),
	}, nil
}

// BuildWithPostDom is like Build but reuses an already-computed
// post-dominator map instead of recomputing it — used by subgraph.Build,
// which carries the parent's PostDom through unchanged per spec.md §4.J
// (deletion only shrinks successor sets, so the parent's PD remains a
// valid over-approximation on the subgraph).
func BuildWithPostDom(store *graphstore.GraphStore, parentPostDom *postdom.Map) (*Graph, error) {
	topoIdx := topo.Compute(store)
	idepMap, err := idep.Compute(store, topoIdx)
	if err != nil {
		return nil, err
	}

	return &Graph{
		Store:   store,
		Topo:    topoIdx,
		IDep:    idepMap,
		PostDom: parentPostDom,
		KInst:   kinst.Compute(store),
	}, nil
}
