package concretize

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"hase/config"
	"hase/engine"
	"hase/graphstore"
	"hase/subgraph"
)

// cloneSet returns a shallow copy of s.
func cloneSet(s map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}

	return true
}

// smallest returns the lexicographically smallest id in s, for
// deterministic selection of a group's representative vertex.
func smallest(s map[string]struct{}) string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids[0]
}

// newRecordableInst builds a RecordableInst for kinst, given the set of
// vertex ids produced by kinst, the hidden-node set, and the
// newly-concretized node set (concretizedNodes must already exclude
// whatever was concretized before this candidate was considered).
func newRecordableInst(g *engine.Graph, cfg config.Config, ki string, recNodes, hiddenNodes, concretizedNodes map[string]struct{}) (*RecordableInst, error) {
	rep := g.Store.Vertex(smallest(recNodes))
	if rep.Width == 0 {
		return nil, fmt.Errorf("%w: kinst %q", ErrZeroWidth, ki)
	}

	var recordSize float64
	if cfg.PTWrite {
		recordSize = float64(rep.Freq) * 8
	} else {
		recordSize = math.Ceil(float64(rep.Freq) * float64(rep.Width) / 8)
	}

	coverageScore := 0.0
	for id := range concretizedNodes {
		v := g.Store.Vertex(id)
		d, _ := g.IDep.Depth(id)
		coverageScore += float64(v.Width) / 8 * float64(1+d)
	}

	r := &RecordableInst{
		g:                    g,
		KInst:                ki,
		Width:                rep.Width,
		Freq:                 rep.Freq,
		IsPointer:            rep.IsPointer,
		RecNodes:             recNodes,
		HiddenNodes:          hiddenNodes,
		ConcretizedNodes:     concretizedNodes,
		RecordSize:           recordSize,
		NodeReduction:        len(concretizedNodes),
		CoverageScore:        coverageScore,
		CoverageScoreFreq:    coverageScore / recordSize,
		NodeReductionPerByte: float64(len(concretizedNodes)) / recordSize,
	}

	if cfg.SubgraphScores {
		sub, err := subgraph.Build(g.Store, g.PostDom, concretizedNodes)
		if err != nil {
			return nil, err
		}
		r.MaxIDep = sub.IDep.Max()
		remain := 0.0
		for _, id := range sub.Store.Order() {
			v := sub.Store.Vertex(id)
			d, _ := sub.IDep.Depth(id)
			remain += float64(v.Width) / 8 * float64(1+d)
		}
		r.RemainScore = remain
	}

	return r, nil
}

// AnalyzeSingleKinst synthesizes a RecordableInst for ki against
// concretizedSet, via a single forward pass over topological positions
// beyond hintTopo.
func AnalyzeSingleKinst(g *engine.Graph, cfg config.Config, ki string, concretizedSet map[string]struct{}, hintTopo int) (*RecordableInst, error) {
	group, ok := g.KInst.Vertices(ki)
	if !ok {
		return nil, fmt.Errorf("concretize: unknown kinst %q", ki)
	}

	local := cloneSet(concretizedSet)
	for id := range group {
		local[id] = struct{}{}
	}
	hidden := make(map[string]struct{})

	order := g.Topo.Order()
	for _, id := range order[hintTopo+1:] {
		v := g.Store.Vertex(id)
		out := g.Store.Out(id)
		if v.Kind == graphstore.KindConstant || len(out) == 0 {
			continue
		}
		if _, in := local[id]; in {
			continue
		}

		constCount, symCount := 0, 0
		for _, e := range out {
			if g.Store.IsConstant(e.To) {
				constCount++
			} else if _, ok := local[e.To]; ok {
				symCount++
			}
		}

		switch {
		case constCount+symCount == len(out):
			local[id] = struct{}{}
			if symCount > 0 && v.Valid() {
				hidden[id] = struct{}{}
			}
		case constCount+symCount > len(out):
			return nil, fmt.Errorf("concretize: arity accounting exceeded for vertex %q", id)
		}
	}

	concretizedNodes := make(map[string]struct{})
	for id := range local {
		if _, ok := concretizedSet[id]; !ok {
			concretizedNodes[id] = struct{}{}
		}
	}

	return newRecordableInst(g, cfg, ki, group, hidden, concretizedNodes)
}

// AnalyzeRecordable returns one candidate plan per distinct recordable
// instruction not already covered by initial. log receives a single
// warning if the input graph was not already simplified (dangling
// constant-only closure detected upstream of the initial selection).
func AnalyzeRecordable(g *engine.Graph, cfg config.Config, log *logrus.Logger, initial []*RecordableInst) ([][]*RecordableInst, error) {
	checked := make(map[string]struct{})
	concretized := make(map[string]struct{})
	for _, ri := range initial {
		for id := range ri.RecNodes {
			concretized[id] = struct{}{}
			checked[id] = struct{}{}
		}
		for id := range ri.HiddenNodes {
			checked[id] = struct{}{}
		}
	}

	order := g.Topo.Order()
	for _, id := range order {
		out := g.Store.Out(id)
		if len(out) == 0 {
			continue
		}
		allConcrete := true
		for _, e := range out {
			if !g.Store.IsConstant(e.To) {
				if _, ok := concretized[e.To]; !ok {
					allConcrete = false
					break
				}
			}
		}
		if allConcrete {
			concretized[id] = struct{}{}
		}
	}

	inAllConcretized := make(map[string]struct{})
	for _, ri := range initial {
		for id := range ri.ConcretizedNodes {
			inAllConcretized[id] = struct{}{}
		}
	}
	if !setsEqual(concretized, inAllConcretized) && log != nil {
		log.Warn("concretize: input graph is not pre-simplified, dangling constant nodes detected")
	}

	var result [][]*RecordableInst
	for seqid, id := range order {
		v := g.Store.Vertex(id)
		if !v.Valid() {
			continue
		}
		if _, done := checked[id]; done {
			continue
		}

		group, _ := g.KInst.Vertices(v.KInst)
		for nid := range group {
			checked[nid] = struct{}{}
		}

		newRI, err := AnalyzeSingleKinst(g, cfg, v.KInst, concretized, seqid)
		if err != nil {
			return nil, err
		}

		plan := make([]*RecordableInst, 0, len(initial)+1)
		plan = append(plan, initial...)
		plan = append(plan, newRI)
		result = append(result, plan)
	}

	return result, nil
}
