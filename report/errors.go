package report

import "errors"

// ErrDoubleColoring is returned when two RecordableInst entries in the
// same plan claim overlapping concretized nodes — a fatal sanity
// violation per spec.md §7.
var ErrDoubleColoring = errors.New("report: plan double-colors a node")
