package rank

import (
	"sort"

	"hase/concretize"
)

// RecordSize returns the total record_size across every element of plan.
func RecordSize(plan []*concretize.RecordableInst) float64 {
	total := 0.0
	for _, ri := range plan {
		total += ri.RecordSize
	}

	return total
}

// CoverageScore returns the total coverage_score across every element of
// plan.
func CoverageScore(plan []*concretize.RecordableInst) float64 {
	total := 0.0
	for _, ri := range plan {
		total += ri.CoverageScore
	}

	return total
}

// CoverageScoreFreq returns CoverageScore(plan) / RecordSize(plan).
func CoverageScoreFreq(plan []*concretize.RecordableInst) float64 {
	return CoverageScore(plan) / RecordSize(plan)
}

// NodeReduction returns the total node_reduction across every element of
// plan.
func NodeReduction(plan []*concretize.RecordableInst) int {
	total := 0
	for _, ri := range plan {
		total += ri.NodeReduction
	}

	return total
}

// NodeReductionPerByte returns NodeReduction(plan) / RecordSize(plan).
func NodeReductionPerByte(plan []*concretize.RecordableInst) float64 {
	return float64(NodeReduction(plan)) / RecordSize(plan)
}

// RemainScore returns the remain_score of the last plan element — the
// heuristic considers only the graph state after the most recent addition.
func RemainScore(plan []*concretize.RecordableInst) float64 {
	return plan[len(plan)-1].RemainScore
}

// ByCoverageScore sorts plans ascending by CoverageScore. Callers wanting
// the best candidates take the tail.
func ByCoverageScore(plans [][]*concretize.RecordableInst) {
	sort.SliceStable(plans, func(i, j int) bool {
		return CoverageScore(plans[i]) < CoverageScore(plans[j])
	})
}

// ByCoverageScoreFreq sorts plans ascending by CoverageScoreFreq.
func ByCoverageScoreFreq(plans [][]*concretize.RecordableInst) {
	sort.SliceStable(plans, func(i, j int) bool {
		return CoverageScoreFreq(plans[i]) < CoverageScoreFreq(plans[j])
	})
}

// ByNodeReduction sorts plans ascending by NodeReduction.
func ByNodeReduction(plans [][]*concretize.RecordableInst) {
	sort.SliceStable(plans, func(i, j int) bool {
		return NodeReduction(plans[i]) < NodeReduction(plans[j])
	})
}

// ByNodeReductionPerByte sorts plans ascending by NodeReductionPerByte.
func ByNodeReductionPerByte(plans [][]*concretize.RecordableInst) {
	sort.SliceStable(plans, func(i, j int) bool {
		return NodeReductionPerByte(plans[i]) < NodeReductionPerByte(plans[j])
	})
}

// ByRemainScore sorts plans descending by the lexicographic key
// (max_idep of the last element, total record_size, remain_score of the
// last element) — "worse first", matching sortRecInstbyRemainScoreFreq.
func ByRemainScore(plans [][]*concretize.RecordableInst) {
	sort.SliceStable(plans, func(i, j int) bool {
		li, lj := plans[i][len(plans[i])-1], plans[j][len(plans[j])-1]
		if li.MaxIDep != lj.MaxIDep {
			return li.MaxIDep > lj.MaxIDep
		}
		si, sj := RecordSize(plans[i]), RecordSize(plans[j])
		if si != sj {
			return si > sj
		}

		return RemainScore(plans[i]) > RemainScore(plans[j])
	})
}
