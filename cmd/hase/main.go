package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"hase/concretize"
	"hase/config"
	"hase/engine"
	"hase/graphstore"
	"hase/optimize"
	"hase/rank"
	"hase/report"
)

func main() {
	inv, err := ParseInvocation(os.Args[1:])
	if err != nil {
		var invErr *InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	log := logrus.New()

	if err := run(inv, log, os.Stdout); err != nil {
		log.Error(err)
		os.Exit(ExitAnalysis)
	}
}

func run(inv Invocation, log *logrus.Logger, out *os.File) error {
	g, err := loadGraph(inv.GraphPath)
	if err != nil {
		return err
	}

	cfg := config.New(config.WithPTWrite(!inv.NoPTWrite))

	if inv.UNConstraints != "" {
		kinsts, err := crossGraphConstraints(inv.UNConstraints, inv.RecordUNCFG, cfg)
		if err != nil {
			return err
		}
		if inv.DatarecOut != "" {
			w, err := os.Create(inv.DatarecOut)
			if err != nil {
				return fmt.Errorf("hase: opening %s: %w", inv.DatarecOut, err)
			}
			defer w.Close()

			return report.WriteDatarecConfig(w, kinsts)
		}

		return report.WriteDatarecConfig(out, kinsts)
	}

	if inv.GetUN {
		for _, r := range report.RankArrays(g, cfg) {
			fmt.Fprintf(out, "%s\tvertices=%d\tmass=%.1f\tmin_cost=%.1f\n", r.Name, r.VertexCount, r.Mass, r.MinCost)
		}
	}

	if len(inv.RecordUN) > 0 {
		arrayNames := make(map[string]struct{}, len(inv.RecordUN))
		for _, name := range inv.RecordUN {
			arrayNames[name] = struct{}{}
		}
		ids, err := optimize.UpdateListConcretize(g, cfg, arrayNames, inv.IndepThreshold)
		if err != nil {
			return fmt.Errorf("hase: update-list concretize: %w", err)
		}
		if inv.DatarecOut != "" {
			kinsts := kinstsOf(g, ids)
			w, err := os.Create(inv.DatarecOut)
			if err != nil {
				return fmt.Errorf("hase: opening %s: %w", inv.DatarecOut, err)
			}
			defer w.Close()
			if err := report.WriteDatarecConfig(w, kinsts); err != nil {
				return fmt.Errorf("hase: writing %s: %w", inv.DatarecOut, err)
			}
		}
	}

	targets := collectTargets(g, inv)

	var initial []*concretize.RecordableInst
	for t := range targets {
		v := g.Store.Vertex(t)
		if v == nil || !v.Valid() {
			continue
		}
		ri, err := concretize.AnalyzeSingleKinst(g, cfg, v.KInst, map[string]struct{}{}, -1)
		if err != nil {
			return fmt.Errorf("hase: analyzing target %s: %w", t, err)
		}
		initial = append(initial, ri)
	}

	plans, err := concretize.AnalyzeRecordable(g, cfg, log, initial)
	if err != nil {
		return fmt.Errorf("hase: analyzing recordable instructions: %w", err)
	}

	rank.ByCoverageScore(plans)
	top := plans
	if len(top) > 10 {
		top = top[len(top)-10:]
	}

	return report.PrintCandidates(out, top, g.Store.Len())
}

// collectTargets resolves the initial target vertex set from Category=Q
// vertices (unless IgnoreEvaluation), plus --evalinst and --evalnid.
func collectTargets(g *engine.Graph, inv Invocation) map[string]struct{} {
	targets := make(map[string]struct{})

	if !inv.IgnoreEvaluation {
		for _, id := range g.Store.Order() {
			if g.Store.Vertex(id).Category == graphstore.CategoryQuery {
				targets[id] = struct{}{}
			}
		}
	}

	wantKInst := make(map[string]struct{}, len(inv.EvalInst))
	for _, k := range inv.EvalInst {
		wantKInst[k] = struct{}{}
	}
	if len(wantKInst) > 0 {
		for _, id := range g.Store.Order() {
			if _, ok := wantKInst[g.Store.Vertex(id).KInst]; ok {
				targets[id] = struct{}{}
			}
		}
	}

	for _, id := range inv.EvalNID {
		if g.Store.HasVertex(id) {
			targets[id] = struct{}{}
		}
	}

	return targets
}

func kinstsOf(g *engine.Graph, ids []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, id := range ids {
		v := g.Store.Vertex(id)
		if v == nil {
			continue
		}
		if _, dup := seen[v.KInst]; dup {
			continue
		}
		seen[v.KInst] = struct{}{}
		out = append(out, v.KInst)
	}

	return out
}
