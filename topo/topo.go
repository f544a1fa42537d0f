package topo

import "hase/graphstore"

// Index maps vertex id -> topological position. Dependencies (operand
// vertices) always carry strictly smaller positions than their dependants
// (operator vertices): for every edge (u -> v), Index[u] > Index[v].
type Index struct {
	pos   map[string]int
	order []string // vertex ids sorted by increasing position
}

// Position returns the topological position of id, and whether id was
// present in the graph the Index was computed over.
func (idx *Index) Position(id string) (int, bool) {
	p, ok := idx.pos[id]

	return p, ok
}

// Len returns the number of indexed vertices.
func (idx *Index) Len() int { return len(idx.order) }

// Order returns vertex ids sorted by increasing topological position
// (dependencies before dependants). The returned slice must not be
// mutated by callers.
func (idx *Index) Order() []string { return idx.order }

// stackFrame is one entry of the explicit DFS work stack: the vertex being
// visited and how far through its outgoing edges we've scanned so far.
type stackFrame struct {
	id       string
	nextEdge int
}

// Compute assigns a topological position to every vertex of g via
// iterative DFS: push a vertex on first visit, scan its outgoing edges one
// at a time, and finalize (assign the next counter value) only once every
// target has already been finalized or is currently being scanned.
//
// Determinism: vertices are seeded onto the stack in g.Order(); a vertex's
// successors are scanned in g.Out(id) storage order.
func Compute(g *graphstore.GraphStore) *Index {
	idx := &Index{
		pos:   make(map[string]int, g.Len()),
		order: make([]string, 0, g.Len()),
	}
	finalized := make(map[string]bool, g.Len())
	counter := 0

	for _, root := range g.Order() {
		if finalized[root] {
			continue
		}
		stack := []stackFrame{{id: root}}
		onStack := map[string]bool{root: true}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if finalized[top.id] {
				stack = stack[:len(stack)-1]
				continue
			}
			edges := g.Out(top.id)
			if top.nextEdge >= len(edges) {
				// every successor already finalized (or never existed): finalize top.
				finalized[top.id] = true
				idx.pos[top.id] = counter
				idx.order = append(idx.order, top.id)
				counter++
				delete(onStack, top.id)
				stack = stack[:len(stack)-1]
				continue
			}
			target := edges[top.nextEdge].To
			top.nextEdge++
			if finalized[target] || onStack[target] {
				// already finalized, or already on the current path
				// (a cycle in malformed input); either way, skip it.
				continue
			}
			onStack[target] = true
			stack = append(stack, stackFrame{id: target})
		}
	}

	return idx
}
