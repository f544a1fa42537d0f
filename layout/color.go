package layout

import (
	"fmt"

	"hase/concretize"
)

// Color is the display color of one vertex in a colored plan.
type Color uint8

const (
	// ColorWhite marks a vertex concretized only as a side effect of
	// recording something else.
	ColorWhite Color = iota
	// ColorRed marks a vertex directly recorded (a member of some
	// RecordableInst's RecNodes).
	ColorRed
	// ColorGreen marks a vertex hidden: concretized without being
	// directly recorded, because every operand is already known.
	ColorGreen
)

// ErrDoubleColored is returned when two RecordableInst entries in plan
// claim the same vertex.
var ErrDoubleColored = fmt.Errorf("layout: vertex colored twice")

// ColorPlan colors the ConcretizedNodes members of every RecordableInst in
// plan: ColorRed if the vertex is also in that entry's RecNodes,
// ColorGreen if it is in its HiddenNodes, and ColorWhite otherwise.
// Vertices outside every ConcretizedNodes set get no entry. Returns
// ErrDoubleColored if any vertex is in more than one entry's
// ConcretizedNodes.
func ColorPlan(plan []*concretize.RecordableInst) (map[string]Color, error) {
	colors := make(map[string]Color)
	claimed := make(map[string]struct{})

	for _, ri := range plan {
		for id := range ri.ConcretizedNodes {
			if _, dup := claimed[id]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDoubleColored, id)
			}
			claimed[id] = struct{}{}

			_, rec := ri.RecNodes[id]
			_, hidden := ri.HiddenNodes[id]
			switch {
			case rec:
				colors[id] = ColorRed
			case hidden:
				colors[id] = ColorGreen
			default:
				colors[id] = ColorWhite
			}
		}
	}

	return colors, nil
}
