package report

import (
	"sort"

	"hase/config"
	"hase/engine"
	"hase/graphstore"
	"hase/mustconcretize"
)

// ArrayRank summarizes one symbolic array's recording cost profile.
type ArrayRank struct {
	// Name is the array's name (Root attribute with its bracketed size
	// suffix stripped).
	Name string
	// VertexCount is the number of Read/UpdateNode vertices on this array.
	VertexCount int
	// Mass is the total freq*width across those vertices — the
	// "how much does this array matter" weight from randselect.py.
	Mass float64
	// MinCost is the total byte cost of the cheapest union of
	// MustConcretize results across every vertex on this array.
	MinCost float64
}

// RankArrays groups g's Read/UpdateNode vertices by array name and reports,
// per array, how many such vertices exist, their combined freq*width mass,
// and the cheapest recording cost to concretize every one of them.
//
// Recovered from original_source/utils/visualize/randselect.py, which
// samples low-(freq*width) vertices at random to build a cheap recording
// config; RankArrays reports the same "which arrays are cheap to cover"
// signal deterministically instead, per SPEC_FULL.md's supplemented
// --getUN feature.
func RankArrays(g *engine.Graph, cfg config.Config) []ArrayRank {
	byArray := make(map[string][]string)
	for _, id := range g.Store.Order() {
		v := g.Store.Vertex(id)
		if v.Kind != graphstore.KindRead && v.Kind != graphstore.KindUpdateNode {
			continue
		}
		if v.Root == "" {
			continue
		}
		name := graphstore.ArrayName(v.Root)
		byArray[name] = append(byArray[name], id)
	}

	mc := mustconcretize.New(g, cfg)

	ranks := make([]ArrayRank, 0, len(byArray))
	for name, ids := range byArray {
		mass := 0.0
		union := make(map[string]struct{})
		for _, id := range ids {
			v := g.Store.Vertex(id)
			mass += float64(v.Freq) * float64(v.Width)
			for cid := range mc.Compute(id) {
				union[cid] = struct{}{}
			}
		}

		ranks = append(ranks, ArrayRank{
			Name:        name,
			VertexCount: len(ids),
			Mass:        mass,
			MinCost:     kinstCost(g, union),
		})
	}

	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].MinCost != ranks[j].MinCost {
			return ranks[i].MinCost < ranks[j].MinCost
		}

		return ranks[i].Name < ranks[j].Name
	})

	return ranks
}

// kinstCost returns the total byte cost of recording the distinct kinsts
// labeling ids, one freq*8 charge per kinst.
func kinstCost(g *engine.Graph, ids map[string]struct{}) float64 {
	kinsts := make(map[string]struct{})
	for id := range ids {
		kinsts[g.Store.Vertex(id).KInst] = struct{}{}
	}

	total := 0.0
	for k := range kinsts {
		group, ok := g.KInst.Vertices(k)
		if !ok || len(group) == 0 {
			continue
		}
		ids := make([]string, 0, len(group))
		for id := range group {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		total += float64(g.Store.Vertex(ids[0]).Freq) * 8
	}

	return total
}
