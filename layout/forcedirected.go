package layout

import (
	"sort"

	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"

	"hase/graphstore"
)

// ForceDirected arranges store's vertices with the Eades force-directed
// layout algorithm and returns each vertex's final 2D coordinates, keyed
// by vertex id.
func ForceDirected(store *graphstore.GraphStore, updates int) map[string]r2.Vec {
	order := store.Order()
	idOf := make(map[string]int64, len(order))
	nameOf := make(map[int64]string, len(order))
	for i, id := range order {
		idOf[id] = int64(i)
		nameOf[int64(i)] = id
	}

	g := simple.NewDirectedGraph()
	for _, id := range order {
		g.AddNode(simple.Node(idOf[id]))
	}
	for _, id := range order {
		for _, e := range store.Out(id) {
			g.SetEdge(g.NewEdge(simple.Node(idOf[e.From]), simple.Node(idOf[e.To])))
		}
	}

	eades := &layout.Eades{M: updates, C1: 2, C2: 1, C3: 1, C4: 0.1, Theta: 0.5}
	optimizer := layout.NewOptimizerR2(g, eades.Update)
	for optimizer.Update() {
	}

	positions := make(map[string]r2.Vec, len(order))
	for _, id := range order {
		positions[id] = optimizer.Coord2(idOf[id])
	}

	return positions
}

// sortedIDs returns store's vertex ids in deterministic order, for callers
// that need to iterate positions reproducibly.
func sortedIDs(store *graphstore.GraphStore) []string {
	ids := append([]string(nil), store.Order()...)
	sort.Strings(ids)

	return ids
}
