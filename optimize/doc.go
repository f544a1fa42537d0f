// Package optimize implements the fixed-point substitution loop that
// refines an initial recording selection into a cheaper one, and the
// array-update target selection that feeds it.
//
// Grounded on hase.py's recursiveOptimizeRecKInstL, buildRecKInstL, and
// UpdateListConcretize.
package optimize
