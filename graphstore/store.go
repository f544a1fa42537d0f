package graphstore

import "fmt"

// Description is the in-memory, decoded form of a graph description, fully
// decoupled from any wire format. loader.Decode produces one of these;
// tests can build one directly.
type Description struct {
	// Order lists vertex ids in the order they should be considered for
	// any operation whose output depends on iteration order (spec.md
	// §4.B: "iteration order over vertices is defined by the input's
	// iteration order").
	Order []string

	// Vertices maps id -> Vertex. A Vertex with Kind absent on the wire
	// (marked true in Dummy) is a "dummy" vertex
	// used only to scale edge width in the visualization pipeline, and is
	// dropped by New.
	Vertices map[string]*Vertex

	// Dummy marks vertex ids that are present in Vertices only as a
	// placeholder (no Kind on the wire); New filters these out, along
	// with every edge touching them.
	Dummy map[string]bool

	// Edges lists edges in storage order (spec.md §4.B: "within a
	// vertex's successors, the edge order is defined by storage order").
	Edges []Edge
}

// GraphStore holds the frozen vertex set and forward/reverse adjacency of a
// constraint graph. It is immutable after construction: New and
// DeleteVertices are the only ways to obtain one, and neither mutates an
// existing GraphStore.
//
// Complexity: O(1) amortized for Vertex/HasVertex/Out/In lookups.
type GraphStore struct {
	order    []string // vertex ids, in the order New/DeleteVertices used
	vertices map[string]*Vertex
	out      map[string][]*Edge // id -> outgoing edges, in storage order
	in       map[string][]*Edge // id -> incoming edges, in storage order
}

// New builds a GraphStore from desc, filtering dummy vertices and every
// edge that touches one, and validating every remaining edge weight.
// Returns ErrInvalidEdgeWeight, ErrDuplicateVertex, or ErrDanglingEdge on
// malformed input.
func New(desc *Description) (*GraphStore, error) {
	g := &GraphStore{
		vertices: make(map[string]*Vertex, len(desc.Order)),
		out:      make(map[string][]*Edge),
		in:       make(map[string][]*Edge),
	}

	// 1. Admit vertices in description order, skipping dummies.
	seen := make(map[string]struct{}, len(desc.Order))
	for _, id := range desc.Order {
		if desc.Dummy[id] {
			continue // dummy: used only for visualization edge-width scaling
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
		}
		seen[id] = struct{}{}
		v, ok := desc.Vertices[id]
		if !ok {
			return nil, fmt.Errorf("graphstore: id %q listed in Order but missing from Vertices", id)
		}
		g.order = append(g.order, id)
		g.vertices[id] = v
	}

	// 2. Admit edges whose endpoints both survived dummy-filtering, and
	// validate every weight.
	for _, e := range desc.Edges {
		if desc.Dummy[e.From] || desc.Dummy[e.To] {
			continue
		}
		if !e.Weight.Valid() {
			return nil, fmt.Errorf("%w: edge %s->%s has weight %v", ErrInvalidEdgeWeight, e.From, e.To, float64(e.Weight))
		}
		if _, ok := g.vertices[e.From]; !ok {
			return nil, fmt.Errorf("%w: %q (source)", ErrDanglingEdge, e.From)
		}
		if _, ok := g.vertices[e.To]; !ok {
			return nil, fmt.Errorf("%w: %q (target)", ErrDanglingEdge, e.To)
		}
		edge := e
		g.out[e.From] = append(g.out[e.From], &edge)
		g.in[e.To] = append(g.in[e.To], &edge)
	}

	return g, nil
}

// DeleteVertices returns a new GraphStore containing every vertex of g not
// in deleted, and every edge of g whose endpoints both survive. Iteration
// order over the surviving vertices is preserved from g.
//
// Complexity: O(V+E).
func (g *GraphStore) DeleteVertices(deleted map[string]struct{}) *GraphStore {
	out := &GraphStore{
		vertices: make(map[string]*Vertex, len(g.order)-len(deleted)),
		out:      make(map[string][]*Edge),
		in:       make(map[string][]*Edge),
	}
	for _, id := range g.order {
		if _, gone := deleted[id]; gone {
			continue
		}
		out.order = append(out.order, id)
		out.vertices[id] = g.vertices[id]
	}
	for _, id := range out.order {
		for _, e := range g.out[id] {
			if _, gone := deleted[e.To]; gone {
				continue
			}
			out.out[e.From] = append(out.out[e.From], e)
			out.in[e.To] = append(out.in[e.To], e)
		}
	}

	return out
}

// Order returns vertex ids in construction order. The returned slice must
// not be mutated by callers.
func (g *GraphStore) Order() []string { return g.order }

// Len returns the number of vertices in the store.
func (g *GraphStore) Len() int { return len(g.order) }

// HasVertex reports whether id names a vertex in this store.
func (g *GraphStore) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertex returns the vertex named id, or nil if absent.
func (g *GraphStore) Vertex(id string) *Vertex {
	return g.vertices[id]
}

// Out returns the outgoing edges of id, in storage order. The returned
// slice must not be mutated by callers.
func (g *GraphStore) Out(id string) []*Edge { return g.out[id] }

// In returns the incoming edges of id, in storage order. The returned
// slice must not be mutated by callers.
func (g *GraphStore) In(id string) []*Edge { return g.in[id] }

// IsConstant reports whether id names a vertex of Kind KindConstant. A
// vertex that does not exist is not constant.
func (g *GraphStore) IsConstant(id string) bool {
	v := g.vertices[id]

	return v != nil && v.Kind == KindConstant
}
