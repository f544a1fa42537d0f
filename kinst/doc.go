// Package kinst indexes a graphstore.GraphStore by recordable instruction:
// every vertex whose KInst identifies a recordable instruction (Valid
// returns true) is grouped under that instruction id, so later stages can
// go from "record this instruction" to "these are its vertices" without a
// linear scan.
//
// Grounded on the original hase.py build_kinst2nodes.
package kinst
