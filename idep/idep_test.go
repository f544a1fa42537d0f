package idep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hase/graphstore"
	"hase/idep"
	"hase/topo"
)

func buildStore(t *testing.T, ids []string, edges []graphstore.Edge) *graphstore.GraphStore {
	t.Helper()

	desc := &graphstore.Description{
		Order:    ids,
		Vertices: make(map[string]*graphstore.Vertex, len(ids)),
		Dummy:    map[string]bool{},
		Edges:    edges,
	}
	for _, id := range ids {
		desc.Vertices[id] = &graphstore.Vertex{ID: id, Kind: graphstore.KindOther, KInst: "ki_" + id, Width: 8}
	}

	g, err := graphstore.New(desc)
	require.NoError(t, err)

	return g
}

func TestCompute_NoEdges(t *testing.T) {
	g := buildStore(t, []string{"A", "B"}, nil)
	idx := topo.Compute(g)
	m, err := idep.Compute(g, idx)
	require.NoError(t, err)

	for _, id := range []string{"A", "B"} {
		d, ok := m.Depth(id)
		require.True(t, ok)
		assert.Equal(t, 0, d)
	}
	assert.Equal(t, 0, m.Max())
}

// TestCompute_DirectChain builds A -> B -> C (all direct edges): idep is 0
// throughout since no indirect hop occurs.
func TestCompute_DirectChain(t *testing.T) {
	g := buildStore(t, []string{"A", "B", "C"}, []graphstore.Edge{
		{From: "A", To: "B", Weight: graphstore.WeightDirect},
		{From: "B", To: "C", Weight: graphstore.WeightDirect},
	})
	idx := topo.Compute(g)
	m, err := idep.Compute(g, idx)
	require.NoError(t, err)

	for _, id := range []string{"A", "B", "C"} {
		d, _ := m.Depth(id)
		assert.Equal(t, 0, d)
	}
}

// TestCompute_IndirectChain builds A -> B with an indirect edge, B -> C
// direct: C sits two hops behind A via the indirect edge, so idep(B)=1 and
// idep(C)=1 too (the direct hop from B does not add further depth).
func TestCompute_IndirectChain(t *testing.T) {
	g := buildStore(t, []string{"A", "B", "C"}, []graphstore.Edge{
		{From: "A", To: "B", Weight: graphstore.WeightIndirect},
		{From: "B", To: "C", Weight: graphstore.WeightDirect},
	})
	idx := topo.Compute(g)
	m, err := idep.Compute(g, idx)
	require.NoError(t, err)

	da, _ := m.Depth("A")
	db, _ := m.Depth("B")
	dc, _ := m.Depth("C")
	assert.Equal(t, 0, da)
	assert.Equal(t, 1, db)
	assert.Equal(t, 1, dc)
	assert.Equal(t, 1, m.Max())
}

// TestCompute_TakesMax builds a vertex reached by two dependants: one via a
// direct edge, one via an indirect edge. The deeper path wins.
func TestCompute_TakesMax(t *testing.T) {
	g := buildStore(t, []string{"A", "B", "C"}, []graphstore.Edge{
		{From: "A", To: "C", Weight: graphstore.WeightDirect},
		{From: "B", To: "C", Weight: graphstore.WeightIndirect},
	})
	idx := topo.Compute(g)
	m, err := idep.Compute(g, idx)
	require.NoError(t, err)

	dc, _ := m.Depth("C")
	assert.Equal(t, 1, dc)
}
