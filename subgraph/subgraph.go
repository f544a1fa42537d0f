package subgraph

import (
	"hase/engine"
	"hase/graphstore"
	"hase/postdom"
)

// Build deletes every vertex id in deleted from parent (and every edge
// touching one) and recomputes the topological, indirect-depth, and kinst
// indices over the survivors. parentPostDom is threaded through without
// recomputation.
func Build(parent *graphstore.GraphStore, parentPostDom *postdom.Map, deleted map[string]struct{}) (*engine.Graph, error) {
	store := parent.DeleteVertices(deleted)

	return engine.BuildWithPostDom(store, parentPostDom)
}
