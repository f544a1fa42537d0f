package concretize

import (
	"errors"

	"hase/engine"
)

// ErrZeroWidth is returned when a synthesized RecordableInst's
// representative vertex carries a width of zero.
var ErrZeroWidth = errors.New("concretize: zero width instruction")

// RecordableInst is a plan to record one kinst, carrying the closure it
// induces and the cost metrics derived from it.
//
// A RecordableInst holds a reference to the engine.Graph it was computed
// against; it must never outlive that graph.
type RecordableInst struct {
	g *engine.Graph

	KInst     string
	Width     int
	Freq      uint64
	IsPointer bool

	RecNodes         map[string]struct{}
	HiddenNodes      map[string]struct{}
	ConcretizedNodes map[string]struct{}

	RecordSize            float64
	NodeReduction         int
	CoverageScore         float64
	CoverageScoreFreq     float64
	NodeReductionPerByte  float64

	// RemainScore and MaxIDep are populated only when
	// config.Config.SubgraphScores is set; they are zero otherwise.
	RemainScore float64
	MaxIDep     int
}

// Graph returns the engine.Graph this RecordableInst was computed
// against.
func (r *RecordableInst) Graph() *engine.Graph { return r.g }
