package main

import (
	"flag"
	"fmt"
	"strings"
)

// Exit codes per spec.md §6: zero on success, non-zero on parse failure
// or invariant violation.
const (
	ExitSuccess  = 0
	ExitUsage    = 1
	ExitAnalysis = 2
)

// InvocationError carries the process exit code alongside a
// user-facing message.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string { return e.Message }

func usageErrorf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// Invocation is the canonical, parsed command line.
type Invocation struct {
	GraphPath        string
	PreselectedKInst []string

	IgnoreEvaluation bool
	EvalInst         []string
	EvalNID          []string
	RecordUN         []string
	IndepThreshold   int
	DatarecOut       string
	UNConstraints    string
	RecordUNCFG      string
	GetUN            bool
	NoPTWrite        bool
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

// ParseInvocation parses args (os.Args[1:]) into an Invocation.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("hase", flag.ContinueOnError)

	var (
		ignoreEvaluation bool
		evalInst         string
		evalNID          string
		recordUN         string
		indepThres       int
		datarecOut       string
		unConstraints    string
		recordUNCFG      string
		getUN            bool
		noPTWrite        bool
	)

	fs.BoolVar(&ignoreEvaluation, "ignore-evaluation", false, "skip auto-selection of Category=Q vertices as targets")
	fs.StringVar(&evalInst, "evalinst", "", "additional target kinsts (csv)")
	fs.StringVar(&evalNID, "evalnid", "", "additional target vertex ids (csv)")
	fs.StringVar(&recordUN, "recordUN", "", "array names whose symbolic index accesses must be concretized (csv)")
	fs.IntVar(&indepThres, "indep-thres", 0, "minimum indirect depth for update-list targets")
	fs.StringVar(&datarecOut, "datarec-out", "", "write the chosen kinst list, one per line")
	fs.StringVar(&unConstraints, "UN-constraints", "", "file of additional graph paths for cross-graph recursive optimization")
	fs.StringVar(&recordUNCFG, "recordUNCFG", "", "seed kinst set for --UN-constraints")
	fs.BoolVar(&getUN, "getUN", false, "print the array-ranking report")
	fs.BoolVar(&noPTWrite, "noptwrite", false, "disable the 8-byte minimum record unit")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, usageErrorf("%v", err)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Invocation{}, usageErrorf("missing positional argument graph_json")
	}

	return Invocation{
		GraphPath:        rest[0],
		PreselectedKInst: rest[1:],
		IgnoreEvaluation: ignoreEvaluation,
		EvalInst:         splitCSV(evalInst),
		EvalNID:          splitCSV(evalNID),
		RecordUN:         splitCSV(recordUN),
		IndepThreshold:   indepThres,
		DatarecOut:       datarecOut,
		UNConstraints:    unConstraints,
		RecordUNCFG:      recordUNCFG,
		GetUN:            getUN,
		NoPTWrite:        noPTWrite,
	}, nil
}
