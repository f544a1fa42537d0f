package mustconcretize

import (
	"math"
	"sort"

	"hase/config"
	"hase/engine"
)

// Map memoizes MustConcretize results for one engine.Graph and
// config.Config pair. A Map's Config is fixed by New, so switching
// config.Config.AllowPointer takes a fresh Map.
type Map struct {
	g     *engine.Graph
	cfg   config.Config
	cache map[string]map[string]struct{}
}

// New returns a Map bound to g and cfg with an empty memo.
func New(g *engine.Graph, cfg config.Config) *Map {
	return &Map{g: g, cfg: cfg, cache: make(map[string]map[string]struct{})}
}

// Reset clears the memo. The Map keeps the Config it was created with.
func (m *Map) Reset() { m.cache = make(map[string]map[string]struct{}) }

// Compute returns the cheapest set of vertex ids whose recording would
// concretize target, caching the result. A target absent from the graph
// yields the empty set: nothing to record.
func (m *Map) Compute(target string) map[string]struct{} {
	if !m.g.Store.HasVertex(target) {
		return map[string]struct{}{}
	}
	if cached, ok := m.cache[target]; ok {
		return cached
	}

	stack := []string{target}
	visited := make(map[string]bool)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if visited[top] {
			stack = stack[:len(stack)-1]
			if _, done := m.cache[top]; !done {
				m.cache[top] = m.finalize(top)
			}
			continue
		}
		visited[top] = true
		for _, e := range m.g.Store.Out(top) {
			if _, done := m.cache[e.To]; !done {
				stack = append(stack, e.To)
			}
		}
	}

	return m.cache[target]
}

// finalize computes MC(id) from the already-finalized MC sets of id's
// children (outgoing-edge targets).
func (m *Map) finalize(id string) map[string]struct{} {
	v := m.g.Store.Vertex(id)

	var selfCost float64
	if v.Valid() && (m.cfg.AllowPointer || !v.IsPointer) {
		selfCost = float64(v.Freq) * 8
	} else {
		selfCost = math.Inf(1)
	}

	childUnion := make(map[string]struct{})
	for _, e := range m.g.Store.Out(id) {
		for c := range m.cache[e.To] {
			childUnion[c] = struct{}{}
		}
	}

	dedup := make(map[string]struct{}, len(childUnion))
	for c := range childUnion {
		pd, _ := m.g.PostDom.PostDom(c)
		if pd.Len() == 0 || !pd.Subset(childUnion) {
			dedup[c] = struct{}{}
		}
	}

	childCost := 0.0
	usable := true
	for c := range dedup {
		if !m.g.Store.Vertex(c).Valid() {
			usable = false
			break
		}
	}
	if usable {
		childCost = m.kinstSetCost(dedup)
	} else {
		dedup = map[string]struct{}{}
	}

	switch {
	case childCost > 0 && childCost <= selfCost:
		return dedup
	case m.g.Store.IsConstant(id):
		return map[string]struct{}{}
	default:
		return map[string]struct{}{id: {}}
	}
}

// kinstSetCost returns the total byte cost of recording the distinct
// kinsts labeling ids — one freq*8 charge per kinst, not per vertex.
func (m *Map) kinstSetCost(ids map[string]struct{}) float64 {
	kinsts := make(map[string]struct{})
	for id := range ids {
		kinsts[m.g.Store.Vertex(id).KInst] = struct{}{}
	}

	total := 0.0
	for ki := range kinsts {
		group, ok := m.g.KInst.Vertices(ki)
		if !ok || len(group) == 0 {
			continue
		}
		total += float64(m.g.Store.Vertex(representative(group)).Freq) * 8
	}

	return total
}

// representative returns the lexicographically smallest id in ids, for
// deterministic freq selection among a kinst's vertex group.
func representative(ids map[string]struct{}) string {
	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	return sorted[0]
}
