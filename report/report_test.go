package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hase/config"
	"hase/concretize"
	"hase/engine"
	"hase/graphstore"
	"hase/report"
)

func buildGraph(t *testing.T, vs map[string]*graphstore.Vertex, order []string, edges []graphstore.Edge) *engine.Graph {
	t.Helper()

	desc := &graphstore.Description{Order: order, Vertices: vs, Dummy: map[string]bool{}, Edges: edges}
	store, err := graphstore.New(desc)
	require.NoError(t, err)

	g, err := engine.Build(store)
	require.NoError(t, err)

	return g
}

func TestSummarize_DetectsDoubleColoring(t *testing.T) {
	shared := map[string]struct{}{"x": {}}
	plan := []*concretize.RecordableInst{
		{KInst: "k1", ConcretizedNodes: shared, RecNodes: map[string]struct{}{}, RecordSize: 8},
		{KInst: "k2", ConcretizedNodes: shared, RecNodes: map[string]struct{}{}, RecordSize: 8},
	}

	_, err := report.Summarize(plan, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrDoubleColoring)
}

func TestSummarize_RendersTotals(t *testing.T) {
	plan := []*concretize.RecordableInst{{
		KInst:             "ka",
		Width:             8,
		Freq:              5,
		RecNodes:          map[string]struct{}{"a": {}},
		ConcretizedNodes:  map[string]struct{}{"a": {}, "b": {}},
		RecordSize:        40,
		CoverageScore:     12,
		CoverageScoreFreq: 0.3,
	}}

	out, err := report.Summarize(plan, 4)
	require.NoError(t, err)
	assert.Contains(t, out, "kinst=ka")
	assert.Contains(t, out, "Total: 2 (50.00%) nodes concretized.")
}

func TestWriteDatarecConfig_OneKinstPerLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteDatarecConfig(&buf, []string{"k1", "k2", "k3"}))
	assert.Equal(t, "k1\nk2\nk3\n", buf.String())
}

func TestRankArrays_GroupsByArrayName(t *testing.T) {
	g := buildGraph(t, map[string]*graphstore.Vertex{
		"un1": {ID: "un1", Kind: graphstore.KindUpdateNode, KInst: "N/A", Root: "A[8]"},
		"un2": {ID: "un2", Kind: graphstore.KindUpdateNode, KInst: "N/A", Root: "B[8]"},
	}, []string{"un1", "un2"}, nil)

	ranks := report.RankArrays(g, config.New())
	require.Len(t, ranks, 2)

	names := []string{ranks[0].Name, ranks[1].Name}
	assert.ElementsMatch(t, []string{"A", "B"}, names)
	for _, r := range ranks {
		assert.Equal(t, 1, r.VertexCount)
	}
}

func TestRankArrays_SortedByMinCostThenName(t *testing.T) {
	g := buildGraph(t, map[string]*graphstore.Vertex{
		"un1": {ID: "un1", Kind: graphstore.KindUpdateNode, KInst: "N/A", Root: "A[8]"},
		"v1":  {ID: "v1", Kind: graphstore.KindOther, KInst: "k1", Width: 8, Freq: 100},
		"un2": {ID: "un2", Kind: graphstore.KindUpdateNode, KInst: "N/A", Root: "B[8]"},
		"v2":  {ID: "v2", Kind: graphstore.KindOther, KInst: "k2", Width: 8, Freq: 1},
	}, []string{"un1", "v1", "un2", "v2"}, []graphstore.Edge{
		{From: "un1", To: "v1", Weight: graphstore.WeightIndirect},
		{From: "un2", To: "v2", Weight: graphstore.WeightIndirect},
	})

	ranks := report.RankArrays(g, config.New())
	require.Len(t, ranks, 2)
	assert.True(t, ranks[0].MinCost <= ranks[1].MinCost)
	assert.Equal(t, "B", ranks[0].Name)
}
