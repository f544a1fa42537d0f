package kinst

import "hase/graphstore"

// Index maps a recordable instruction id to the set of vertex ids it
// produced.
type Index struct {
	nodes map[string]map[string]struct{}
}

// Vertices returns the vertex ids produced by instruction kinst, or false
// if kinst names no recordable instruction in this graph.
func (idx *Index) Vertices(kinst string) (map[string]struct{}, bool) {
	v, ok := idx.nodes[kinst]

	return v, ok
}

// Instructions returns every recordable instruction id indexed.
func (idx *Index) Instructions() []string {
	out := make([]string, 0, len(idx.nodes))
	for k := range idx.nodes {
		out = append(out, k)
	}

	return out
}

// Len returns the number of distinct recordable instructions indexed.
func (idx *Index) Len() int { return len(idx.nodes) }

// Compute groups every valid-KInst vertex of g under its instruction id.
func Compute(g *graphstore.GraphStore) *Index {
	idx := &Index{nodes: make(map[string]map[string]struct{})}

	for _, id := range g.Order() {
		v := g.Vertex(id)
		if !v.Valid() {
			continue
		}
		set, ok := idx.nodes[v.KInst]
		if !ok {
			set = make(map[string]struct{})
			idx.nodes[v.KInst] = set
		}
		set[id] = struct{}{}
	}

	return idx
}
