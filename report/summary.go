package report

import (
	"fmt"
	"io"
	"sort"

	"hase/concretize"
	"hase/rank"
)

// checkNoOverlap returns ErrDoubleColoring if any two entries of plan
// claim the same concretized node.
func checkNoOverlap(plan []*concretize.RecordableInst) error {
	seen := make(map[string]struct{})
	for _, ri := range plan {
		for id := range ri.ConcretizedNodes {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: node %q claimed twice", ErrDoubleColoring, id)
			}
			seen[id] = struct{}{}
		}
	}

	return nil
}

// Summarize renders one plan (a recording configuration) as text: a header
// line and a rec_nodes line per recorded instruction, followed by the
// plan's aggregate scores
// and the fraction of totalVertices concretized.
func Summarize(plan []*concretize.RecordableInst, totalVertices int) (string, error) {
	if err := checkNoOverlap(plan); err != nil {
		return "", err
	}

	var b []byte
	concretized := make(map[string]struct{})

	for seq, ri := range plan {
		kind := "[Val]"
		if ri.IsPointer {
			kind = "[Ptr]"
		}
		b = fmt.Appendf(b, "Rec[%d]: %s kinst=%s width=%d freq=%d max_idep=%d\n", seq, kind, ri.KInst, ri.Width, ri.Freq, ri.MaxIDep)

		ids := make([]string, 0, len(ri.RecNodes))
		for id := range ri.RecNodes {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		if len(ids) > 10 {
			ids = append(ids[:10], "...")
		}
		b = fmt.Appendf(b, "  rec_nodes: %v\n", ids)

		for id := range ri.ConcretizedNodes {
			concretized[id] = struct{}{}
		}
	}

	b = fmt.Appendf(b, "CoverageScore=%f, CoverageScoreFreq=%f, RemainScore=%f, RecordSize=%f\n",
		rank.CoverageScore(plan), rank.CoverageScoreFreq(plan), rank.RemainScore(plan), rank.RecordSize(plan))

	percent := 0.0
	if totalVertices > 0 {
		percent = float64(len(concretized)) / float64(totalVertices) * 100
	}
	b = fmt.Appendf(b, "Total: %d (%.2f%%) nodes concretized.\n", len(concretized), percent)

	return string(b), nil
}

// PrintCandidates writes one numbered block per plan in plans to w.
func PrintCandidates(w io.Writer, plans [][]*concretize.RecordableInst, totalVertices int) error {
	for seq, plan := range plans {
		summary, err := Summarize(plan, totalVertices)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "###(%4d)###\n%s\n", seq, summary); err != nil {
			return err
		}
	}

	return nil
}

// WriteDatarecConfig writes one kinst identifier per line, matching
// spec.md §6's datarec.cfg output.
func WriteDatarecConfig(w io.Writer, kinsts []string) error {
	for _, k := range kinsts {
		if _, err := fmt.Fprintln(w, k); err != nil {
			return err
		}
	}

	return nil
}
