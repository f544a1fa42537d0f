package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hase/engine"
	"hase/graphstore"
)

func buildStore(t *testing.T) *graphstore.GraphStore {
	t.Helper()

	desc := &graphstore.Description{
		Order: []string{"a", "b", "c"},
		Vertices: map[string]*graphstore.Vertex{
			"a": {ID: "a", Kind: graphstore.KindOther, KInst: "ka", Width: 8, Freq: 1},
			"b": {ID: "b", Kind: graphstore.KindOther, KInst: "kb", Width: 8, Freq: 1},
			"c": {ID: "c", Kind: graphstore.KindConstant, Width: 8, Freq: 1},
		},
		Dummy: map[string]bool{},
		Edges: []graphstore.Edge{
			{From: "a", To: "b", Weight: graphstore.WeightDirect},
			{From: "b", To: "c", Weight: graphstore.WeightIndirect},
		},
	}
	store, err := graphstore.New(desc)
	require.NoError(t, err)

	return store
}

func TestBuild_ComputesAllIndices(t *testing.T) {
	store := buildStore(t)
	g, err := engine.Build(store)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Topo.Len())
	d, ok := g.IDep.Depth("c")
	require.True(t, ok)
	assert.Equal(t, 1, d)
	_, ok = g.KInst.Vertices("ka")
	assert.True(t, ok)
	pd, ok := g.PostDom.PostDom("a")
	require.True(t, ok)
	assert.True(t, pd.Has("b"))
}

func TestBuildWithPostDom_ReusesParentMap(t *testing.T) {
	store := buildStore(t)
	parent, err := engine.Build(store)
	require.NoError(t, err)

	reduced := store.DeleteVertices(map[string]struct{}{"c": {}})
	g, err := engine.BuildWithPostDom(reduced, parent.PostDom)
	require.NoError(t, err)

	assert.Same(t, parent.PostDom, g.PostDom)
	assert.Equal(t, 2, g.Topo.Len())
}
