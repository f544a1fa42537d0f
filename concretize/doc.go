// Package concretize computes the closure under concretization and the
// RecordableInst descriptors that drive the later stages: rank, report,
// layout, and optimize all consume RecordableInst values produced here.
//
// Given a seed set of vertices assumed already concretized (plus every
// constant), the closure repeatedly admits any vertex whose outgoing-edge
// targets are all constants or already in the set. AnalyzeRecordable walks
// the graph in topological order and, for each not-yet-checked recordable
// instruction, synthesizes one RecordableInst via AnalyzeSingleKinst.
//
// Grounded on the original hase.py RecordableInst/analyze_recordable/
// analyze_single_kinst.
package concretize
