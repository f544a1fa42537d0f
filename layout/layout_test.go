package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hase/concretize"
	"hase/graphstore"
	"hase/layout"
)

func TestColorPlan_AssignsExpectedColors(t *testing.T) {
	plan := []*concretize.RecordableInst{{
		RecNodes:         map[string]struct{}{"a": {}},
		HiddenNodes:      map[string]struct{}{"b": {}},
		ConcretizedNodes: map[string]struct{}{"a": {}, "b": {}, "c": {}},
	}}

	colors, err := layout.ColorPlan(plan)
	require.NoError(t, err)
	assert.Equal(t, layout.ColorRed, colors["a"])
	assert.Equal(t, layout.ColorGreen, colors["b"])
	assert.Equal(t, layout.ColorWhite, colors["c"])
}

func TestColorPlan_DetectsDoubleColoring(t *testing.T) {
	plan := []*concretize.RecordableInst{
		{ConcretizedNodes: map[string]struct{}{"x": {}}, RecNodes: map[string]struct{}{}, HiddenNodes: map[string]struct{}{}},
		{ConcretizedNodes: map[string]struct{}{"x": {}}, RecNodes: map[string]struct{}{}, HiddenNodes: map[string]struct{}{}},
	}

	_, err := layout.ColorPlan(plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, layout.ErrDoubleColored)
}

func TestForceDirected_PlacesEveryVertex(t *testing.T) {
	desc := &graphstore.Description{
		Order: []string{"a", "b"},
		Vertices: map[string]*graphstore.Vertex{
			"a": {ID: "a", Kind: graphstore.KindOther, KInst: "ka", Width: 8, Freq: 1},
			"b": {ID: "b", Kind: graphstore.KindOther, KInst: "kb", Width: 8, Freq: 1},
		},
		Dummy: map[string]bool{},
		Edges: []graphstore.Edge{{From: "a", To: "b", Weight: graphstore.WeightDirect}},
	}
	store, err := graphstore.New(desc)
	require.NoError(t, err)

	positions := layout.ForceDirected(store, 10)
	assert.Len(t, positions, 2)
	_, ok := positions["a"]
	assert.True(t, ok)
	_, ok = positions["b"]
	assert.True(t, ok)
}
