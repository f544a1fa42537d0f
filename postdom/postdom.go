package postdom

import "hase/graphstore"

// Map holds the post-dominator set of every vertex of a GraphStore.
type Map struct {
	sets map[string]Set
}

// PostDom returns the post-dominator set of id, and whether id was present
// in the graph the Map was computed over. The returned Set must not be
// mutated by callers.
func (m *Map) PostDom(id string) (Set, bool) {
	s, ok := m.sets[id]

	return s, ok
}

// Compute runs the post-dominator fixed-point iteration over g.
//
// Every vertex with no outgoing edges (a sink) is seeded at the empty set
// and queued onto the worklist. Every other vertex starts at the universal
// set (every vertex id in g). Processing a worklist entry means: for every
// edge pointing into that vertex, recompute the predecessor's
// post-dominator set from its successors' current sets, and requeue the
// predecessor if its set changed.
func Compute(g *graphstore.GraphStore) *Map {
	all := NewSet(g.Order()...)
	sets := make(map[string]Set, g.Len())
	var worklist []string

	for _, id := range g.Order() {
		if len(g.Out(id)) == 0 {
			sets[id] = NewSet()
			worklist = append(worklist, id)
		} else {
			sets[id] = all
		}
	}

	for len(worklist) > 0 {
		var next []string
		for _, changed := range worklist {
			for _, e := range g.In(changed) {
				pred := e.From
				successors := g.Out(pred)

				var newSet Set
				if len(successors) == 1 {
					newSet = withMember(sets[successors[0].To], successors[0].To)
				} else {
					succSets := make([]Set, len(successors))
					for i, s := range successors {
						succSets[i] = sets[s.To]
					}
					newSet = intersect(succSets)
				}

				if !newSet.Equal(sets[pred]) {
					sets[pred] = newSet
					next = append(next, pred)
				}
			}
		}
		worklist = next
	}

	return &Map{sets: sets}
}
