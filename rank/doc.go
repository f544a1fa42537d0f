// Package rank provides stateless sort adapters over a list of plans (a
// plan being a []*concretize.RecordableInst, where analyze_recordable
// keeps every element but the last fixed across candidates). The four
// coverage/reduction sorts are ascending; ByRemainScore sorts descending
// ("worse first"). In every case callers wanting "best" take the tail.
//
// Grounded on the original hase.py sortRecInstsby* static methods.
package rank
