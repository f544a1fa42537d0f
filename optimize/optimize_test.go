package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hase/config"
	"hase/engine"
	"hase/graphstore"
	"hase/mustconcretize"
	"hase/optimize"
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

// TestRun_StableFixedPoint covers the case where the initial recording
// selection is already optimal: a single leaf child cheaper than its
// parent's self cost, with no alternative decomposition available. Both
// phases should agree with a direct MustConcretize call.
func TestRun_StableFixedPoint(t *testing.T) {
	g := buildGraph(t, map[string]*graphstore.Vertex{
		"parent": {ID: "parent", Kind: graphstore.KindOther, KInst: "kp", Width: 8, Freq: 1000},
		"child":  {ID: "child", Kind: graphstore.KindOther, KInst: "kc", Width: 8, Freq: 1},
	}, []string{"parent", "child"}, []graphstore.Edge{
		{From: "parent", To: "child", Weight: graphstore.WeightDirect},
	})

	cfg := config.New()
	want := mustconcretize.New(g, cfg.WithAllowPointerValue(false)).Compute("parent")

	got, err := optimize.Run(g, map[string]struct{}{"parent": {}}, cfg)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestRun_PointerLeafSurvivesBothPhases covers a pointer vertex with no
// possible substitute: RecursiveOptimizer cannot drop it in phase one
// (nothing else covers it), so phase two's seed already contains it and
// the final result is just the vertex itself in both phases.
func TestRun_PointerLeafSurvivesBothPhases(t *testing.T) {
	g := buildGraph(t, map[string]*graphstore.Vertex{
		"p": {ID: "p", Kind: graphstore.KindOther, KInst: "kp", Width: 8, Freq: 1, IsPointer: true},
	}, []string{"p"}, nil)

	got, err := optimize.Run(g, map[string]struct{}{"p": {}}, config.New())
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"p": {}}, got)
}

// TestUpdateListConcretize_Threshold covers spec scenario S6: an
// UpdateNode vertex on array A[8] with one indirect successor v of
// idep=2. A threshold above 2 excludes v; a threshold at or below 2
// selects it and the result matches MustConcretize(v) directly.
func TestUpdateListConcretize_Threshold(t *testing.T) {
	// v is un's direct 1.5-weight successor (the edge UpdateListConcretize
	// inspects). A second path un->mid->v, both indirect, pushes v's idep
	// up to 2 without changing that direct-successor relationship.
	g := buildGraph(t, map[string]*graphstore.Vertex{
		"un":  {ID: "un", Kind: graphstore.KindUpdateNode, KInst: "N/A", Width: 0, Freq: 0, Root: "A[8]"},
		"mid": {ID: "mid", Kind: graphstore.KindOther, KInst: "km", Width: 8, Freq: 3},
		"v":   {ID: "v", Kind: graphstore.KindOther, KInst: "kv", Width: 8, Freq: 7},
	}, []string{"un", "mid", "v"}, []graphstore.Edge{
		{From: "un", To: "v", Weight: graphstore.WeightIndirect},
		{From: "un", To: "mid", Weight: graphstore.WeightIndirect},
		{From: "mid", To: "v", Weight: graphstore.WeightIndirect},
	})

	d, ok := g.IDep.Depth("v")
	require.True(t, ok)
	require.Equal(t, 2, d)

	cfg := config.New()

	empty, err := optimize.UpdateListConcretize(g, cfg, map[string]struct{}{"A": {}}, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)

	got, err := optimize.UpdateListConcretize(g, cfg, map[string]struct{}{"A": {}}, 2)
	require.NoError(t, err)

	want := mustconcretize.New(g, cfg.WithAllowPointerValue(false)).Compute("v")
	wantIDs := make([]string, 0, len(want))
	for id := range want {
		wantIDs = append(wantIDs, id)
	}
	assert.ElementsMatch(t, wantIDs, got)
}

// TestUpdateListConcretize_ArrayNameMismatch covers the array-name filter:
// an UpdateNode on a different array is never selected as a source.
func TestUpdateListConcretize_ArrayNameMismatch(t *testing.T) {
	g := buildGraph(t, map[string]*graphstore.Vertex{
		"un": {ID: "un", Kind: graphstore.KindUpdateNode, KInst: "N/A", Width: 0, Freq: 0, Root: "B[8]"},
		"v":  {ID: "v", Kind: graphstore.KindOther, KInst: "kv", Width: 8, Freq: 7},
	}, []string{"un", "v"}, []graphstore.Edge{
		{From: "un", To: "v", Weight: graphstore.WeightIndirect},
	})

	got, err := optimize.UpdateListConcretize(g, config.New(), map[string]struct{}{"A": {}}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
