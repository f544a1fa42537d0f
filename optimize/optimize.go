package optimize

import (
	"sort"

	"hase/concretize"
	"hase/config"
	"hase/engine"
	"hase/graphstore"
	"hase/mustconcretize"
	"hase/subgraph"
)

// kinstsOf derives the distinct kinst strings labeling ids.
func kinstsOf(g *engine.Graph, ids map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for id := range ids {
		out[g.Store.Vertex(id).KInst] = struct{}{}
	}

	return out
}

// cost returns the total byte cost of recording every kinst in ks, one
// freq*8 charge per kinst using its group's representative vertex.
func cost(g *engine.Graph, ks map[string]struct{}) float64 {
	total := 0.0
	for k := range ks {
		group, ok := g.KInst.Vertices(k)
		if !ok || len(group) == 0 {
			continue
		}
		total += float64(g.Store.Vertex(representative(group)).Freq) * 8
	}

	return total
}

// representative returns the lexicographically smallest id in ids.
func representative(ids map[string]struct{}) string {
	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	return sorted[0]
}

// hasPointer reports whether any vertex in kinst k's group is a pointer.
func hasPointer(g *engine.Graph, k string) bool {
	group, ok := g.KInst.Vertices(k)
	if !ok {
		return false
	}
	for id := range group {
		if g.Store.Vertex(id).IsPointer {
			return true
		}
	}

	return false
}

// buildRecKInstL folds kinsts, in order, into a RecordableInst per kinst
// and the residual graph left after concretizing all of them — grounded
// on buildRecKInstL.
func buildRecKInstL(g *engine.Graph, cfg config.Config, kinsts []string) ([]*concretize.RecordableInst, *engine.Graph, error) {
	cur := g
	concretizedSet := make(map[string]struct{})
	list := make([]*concretize.RecordableInst, 0, len(kinsts))

	for _, k := range kinsts {
		if _, ok := cur.KInst.Vertices(k); !ok {
			continue
		}
		ri, err := concretize.AnalyzeSingleKinst(cur, cfg, k, concretizedSet, -1)
		if err != nil {
			return nil, nil, err
		}
		list = append(list, ri)
		for id := range ri.ConcretizedNodes {
			concretizedSet[id] = struct{}{}
		}
		next, err := subgraph.Build(cur.Store, cur.PostDom, ri.ConcretizedNodes)
		if err != nil {
			return nil, nil, err
		}
		cur = next
	}

	return list, cur, nil
}

// dedupAppend appends k to kinsts if not already present.
func dedupAppend(kinsts []string, seen map[string]struct{}, k string) []string {
	if _, ok := seen[k]; ok {
		return kinsts
	}
	seen[k] = struct{}{}

	return append(kinsts, k)
}

// singlePhase runs the fixed-point substitution loop of spec.md §4.I steps
// 2-4 over one allow_pointer setting, starting from the kinsts labeling
// the ids in seed.
func singlePhase(g *engine.Graph, cfg config.Config, seed map[string]struct{}) ([]string, error) {
	seen := make(map[string]struct{})
	var kinsts []string
	for k := range kinstsOf(g, seed) {
		kinsts = dedupAppend(kinsts, seen, k)
	}
	if len(kinsts) == 0 {
		return kinsts, nil
	}

	for {
		changed := false
		start := kinsts[0]

		for {
			k := kinsts[0]
			rest := kinsts[1:]

			_, residual, err := buildRecKInstL(g, cfg, rest)
			if err != nil {
				return nil, err
			}

			group, _ := g.KInst.Vertices(k)
			mc := mustconcretize.New(residual, cfg)
			rPrime := make(map[string]struct{})
			for id := range group {
				for cid := range mc.Compute(id) {
					rPrime[cid] = struct{}{}
				}
			}
			kPrime := kinstsOf(residual, rPrime)

			_, stillPresent := kPrime[k]
			replace := !stillPresent && (cost(residual, kPrime) < cost(g, map[string]struct{}{k: {}}) ||
				(cost(residual, kPrime) == cost(g, map[string]struct{}{k: {}}) && len(kPrime) == 1) ||
				(!cfg.AllowPointer && hasPointer(g, k)))

			if replace {
				changed = true
				kinsts = rest
				seen = make(map[string]struct{}, len(kinsts))
				for _, kk := range kinsts {
					seen[kk] = struct{}{}
				}
				for kk := range kPrime {
					kinsts = dedupAppend(kinsts, seen, kk)
				}
				break
			}

			kinsts = append(rest, k)
			if kinsts[0] == start {
				break
			}
		}

		if !changed {
			break
		}
	}

	return kinsts, nil
}

// Run implements the full two-phase RecursiveOptimizer of spec.md §4.I:
// phase one with AllowPointer forced false, phase two with it forced true
// and seeded by phase one's result. Returns the fixed
// point as a set of vertex ids: every vertex belonging to a surviving
// kinst.
func Run(g *engine.Graph, targets map[string]struct{}, cfg config.Config) (map[string]struct{}, error) {
	phase1Cfg := cfg.WithAllowPointerValue(false)

	initial := make(map[string]struct{})
	mc1 := mustconcretize.New(g, phase1Cfg)
	for t := range targets {
		for id := range mc1.Compute(t) {
			initial[id] = struct{}{}
		}
	}

	phase1, err := singlePhase(g, phase1Cfg, initial)
	if err != nil {
		return nil, err
	}

	seed := make(map[string]struct{})
	for _, k := range phase1 {
		group, ok := g.KInst.Vertices(k)
		if !ok {
			continue
		}
		for id := range group {
			seed[id] = struct{}{}
		}
	}

	phase2, err := singlePhase(g, cfg.WithAllowPointerValue(true), seed)
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{})
	for _, k := range phase2 {
		group, ok := g.KInst.Vertices(k)
		if !ok {
			continue
		}
		for id := range group {
			result[id] = struct{}{}
		}
	}

	return result, nil
}

// UpdateListConcretize walks g's vertices in topological order and, for
// every UpdateNode or Read vertex whose array name (graphstore.ArrayName
// of its Root) is in arrayNames, collects the targets of its
// WeightIndirect outgoing edges whose indirect depth is at least
// idepThreshold. Those targets are fed through the two-phase
// RecursiveOptimizer and the resulting vertex ids are returned, sorted for
// determinism.
func UpdateListConcretize(g *engine.Graph, cfg config.Config, arrayNames map[string]struct{}, idepThreshold int) ([]string, error) {
	targets := make(map[string]struct{})
	for _, id := range g.Store.Order() {
		v := g.Store.Vertex(id)
		if v.Kind != graphstore.KindUpdateNode && v.Kind != graphstore.KindRead {
			continue
		}
		if _, ok := arrayNames[graphstore.ArrayName(v.Root)]; !ok {
			continue
		}
		for _, e := range g.Store.Out(id) {
			if e.Weight != graphstore.WeightIndirect {
				continue
			}
			d, ok := g.IDep.Depth(e.To)
			if !ok || d < idepThreshold {
				continue
			}
			targets[e.To] = struct{}{}
		}
	}

	if len(targets) == 0 {
		return nil, nil
	}

	result, err := Run(g, targets, cfg)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(result))
	for id := range result {
		out = append(out, id)
	}
	sort.Strings(out)

	return out, nil
}
