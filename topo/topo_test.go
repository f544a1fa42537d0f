package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hase/graphstore"
	"hase/topo"
)

// buildStore constructs a GraphStore with one vertex per id and the given
// edges (from -> to, direct weight). Order of ids is preserved as the
// store's iteration order.
func buildStore(t *testing.T, ids []string, edges [][2]string) *graphstore.GraphStore {
	t.Helper()

	desc := &graphstore.Description{
		Order:    ids,
		Vertices: make(map[string]*graphstore.Vertex, len(ids)),
		Dummy:    map[string]bool{},
	}
	for _, id := range ids {
		desc.Vertices[id] = &graphstore.Vertex{ID: id, Kind: graphstore.KindOther, KInst: "ki_" + id, Width: 8}
	}
	for _, e := range edges {
		desc.Edges = append(desc.Edges, graphstore.Edge{From: e[0], To: e[1], Weight: graphstore.WeightDirect})
	}

	g, err := graphstore.New(desc)
	require.NoError(t, err)

	return g
}

func TestCompute_EmptyGraph(t *testing.T) {
	g := buildStore(t, nil, nil)
	idx := topo.Compute(g)
	assert.Equal(t, 0, idx.Len())
}

func TestCompute_NoEdges(t *testing.T) {
	g := buildStore(t, []string{"A", "B", "C"}, nil)
	idx := topo.Compute(g)
	assert.Equal(t, 3, idx.Len())
	for _, id := range []string{"A", "B", "C"} {
		_, ok := idx.Position(id)
		assert.True(t, ok)
	}
}

// TestCompute_SimpleChain builds A -> B -> C (A depends on B, B depends on
// C) and checks topo(A) > topo(B) > topo(C).
func TestCompute_SimpleChain(t *testing.T) {
	g := buildStore(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	idx := topo.Compute(g)

	pa, _ := idx.Position("A")
	pb, _ := idx.Position("B")
	pc, _ := idx.Position("C")
	assert.Greater(t, pa, pb)
	assert.Greater(t, pb, pc)
}

// TestCompute_BranchingDAG builds A -> B, A -> C (A depends on both B and
// C): A must strictly follow both B and C.
func TestCompute_BranchingDAG(t *testing.T) {
	g := buildStore(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"A", "C"}})
	idx := topo.Compute(g)

	pa, _ := idx.Position("A")
	pb, _ := idx.Position("B")
	pc, _ := idx.Position("C")
	assert.Greater(t, pa, pb)
	assert.Greater(t, pa, pc)
}

// TestCompute_Disconnected verifies two independent chains are each
// internally ordered regardless of interleaving.
func TestCompute_Disconnected(t *testing.T) {
	g := buildStore(t, []string{"X", "Y", "A", "B"}, [][2]string{{"X", "Y"}, {"A", "B"}})
	idx := topo.Compute(g)

	px, _ := idx.Position("X")
	py, _ := idx.Position("Y")
	pa, _ := idx.Position("A")
	pb, _ := idx.Position("B")
	assert.Greater(t, px, py)
	assert.Greater(t, pa, pb)
	assert.Equal(t, 4, idx.Len())
}

// TestCompute_DiamondDAG builds A -> B -> D, A -> C -> D and checks every
// edge respects the dependant > dependency invariant.
func TestCompute_DiamondDAG(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}
	edges := [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}}
	g := buildStore(t, ids, edges)
	idx := topo.Compute(g)

	require.Equal(t, 4, idx.Len())
	for _, e := range edges {
		pu, _ := idx.Position(e[0])
		pv, _ := idx.Position(e[1])
		assert.Greaterf(t, pu, pv, "edge %s->%s", e[0], e[1])
	}
}

// TestCompute_PositionsArePermutation checks the assigned positions are
// exactly {0, ..., n-1} with no gaps or repeats.
func TestCompute_PositionsArePermutation(t *testing.T) {
	ids := []string{"V1", "V2", "V3", "V4", "V5"}
	edges := [][2]string{{"V1", "V2"}, {"V2", "V3"}, {"V1", "V4"}, {"V4", "V5"}, {"V3", "V5"}}
	g := buildStore(t, ids, edges)
	idx := topo.Compute(g)

	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		p, ok := idx.Position(id)
		require.True(t, ok)
		assert.False(t, seen[p], "duplicate position %d", p)
		seen[p] = true
	}
	for i := 0; i < len(ids); i++ {
		assert.True(t, seen[i], "missing position %d", i)
	}
}

// TestCompute_Order checks Order() lists ids sorted by ascending position.
func TestCompute_Order(t *testing.T) {
	g := buildStore(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	idx := topo.Compute(g)

	order := idx.Order()
	require.Len(t, order, 3)
	for i, id := range order {
		p, ok := idx.Position(id)
		require.True(t, ok)
		assert.Equal(t, i, p)
	}
}
