package main

import (
	"bufio"
	"fmt"
	"os"

	"hase/config"
	"hase/engine"
	"hase/graphstore"
	"hase/loader"
	"hase/optimize"
)

// readLines reads path as a list of newline-separated, non-blank,
// non-comment ("#"-prefixed) entries.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		out = append(out, line)
	}

	return out, sc.Err()
}

// crossGraphConstraints implements --UN-constraints: it loads every graph
// named in constraintsPath, re-seeds the kinst set named in recordUNCFGPath
// against each one, runs the two-phase optimizer, and returns the union of
// kinsts the optimizer settles on across every graph.
//
// Grounded on spec.md §6's description of cross-graph recursive
// optimization of a seed kinst set; no analogue exists in the original
// implementation, so the per-graph loop and union semantics here are
// derived directly from optimize.Run's single-graph contract.
func crossGraphConstraints(constraintsPath, recordUNCFGPath string, cfg config.Config) ([]string, error) {
	graphPaths, err := readLines(constraintsPath)
	if err != nil {
		return nil, fmt.Errorf("hase: reading %s: %w", constraintsPath, err)
	}

	seedKInsts, err := readLines(recordUNCFGPath)
	if err != nil {
		return nil, fmt.Errorf("hase: reading %s: %w", recordUNCFGPath, err)
	}
	seedSet := make(map[string]struct{}, len(seedKInsts))
	for _, k := range seedKInsts {
		seedSet[k] = struct{}{}
	}

	union := make(map[string]struct{})
	for _, path := range graphPaths {
		g, err := loadGraph(path)
		if err != nil {
			return nil, err
		}

		targets := make(map[string]struct{})
		for _, id := range g.Store.Order() {
			if _, want := seedSet[g.Store.Vertex(id).KInst]; want {
				targets[id] = struct{}{}
			}
		}
		if len(targets) == 0 {
			continue
		}

		result, err := optimize.Run(g, targets, cfg)
		if err != nil {
			return nil, fmt.Errorf("hase: optimizing %s: %w", path, err)
		}
		for id := range result {
			union[g.Store.Vertex(id).KInst] = struct{}{}
		}
	}

	out := make([]string, 0, len(union))
	for k := range union {
		out = append(out, k)
	}

	return out, nil
}

// loadGraph decodes and builds the full index set for the graph at path.
func loadGraph(path string) (*engine.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hase: opening %s: %w", path, err)
	}
	defer f.Close()

	desc, err := loader.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("hase: decoding %s: %w", path, err)
	}

	store, err := graphstore.New(desc)
	if err != nil {
		return nil, fmt.Errorf("hase: building graph %s: %w", path, err)
	}

	return engine.Build(store)
}
