package idep

import (
	"errors"
	"fmt"

	"hase/graphstore"
	"hase/topo"
)

// ErrInvalidEdgeWeight is returned by Compute if it encounters an edge
// weight outside {graphstore.WeightDirect, graphstore.WeightIndirect}.
// graphstore.New already rejects such edges at construction time, so this
// only fires against a GraphStore built by hand (e.g. in a test).
var ErrInvalidEdgeWeight = errors.New("idep: invalid edge weight")

// Map holds the indirect depth of every vertex of a GraphStore.
type Map struct {
	depth map[string]int
}

// Depth returns the indirect depth of id, and whether id was present in
// the graph the Map was computed over.
func (m *Map) Depth(id string) (int, bool) {
	d, ok := m.depth[id]

	return d, ok
}

// Max returns the maximum indirect depth across every vertex, or 0 if the
// graph is empty.
func (m *Map) Max() int {
	max := 0
	for _, d := range m.depth {
		if d > max {
			max = d
		}
	}

	return max
}

// Compute propagates indirect depth over g's vertices in reverse
// topological order (idx.Order() reversed): a vertex with no incoming
// edges gets depth 0; every other vertex takes the maximum, over its
// incoming edges, of the source vertex's already-computed depth (plus one
// across an indirect edge).
func Compute(g *graphstore.GraphStore, idx *topo.Index) (*Map, error) {
	m := &Map{depth: make(map[string]int, g.Len())}

	order := idx.Order()
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		in := g.In(id)
		if len(in) == 0 {
			m.depth[id] = 0
			continue
		}

		best := 0
		for j, e := range in {
			parent, ok := m.depth[e.From]
			if !ok {
				return nil, fmt.Errorf("idep: vertex %q processed before its dependant %q", id, e.From)
			}

			var candidate int
			switch e.Weight {
			case graphstore.WeightDirect:
				candidate = parent
			case graphstore.WeightIndirect:
				candidate = parent + 1
			default:
				return nil, fmt.Errorf("%w: edge %s->%s has weight %v", ErrInvalidEdgeWeight, e.From, e.To, float64(e.Weight))
			}

			if j == 0 || candidate > best {
				best = candidate
			}
		}
		m.depth[id] = best
	}

	return m, nil
}
