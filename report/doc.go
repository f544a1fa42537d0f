// Package report renders ranked recording plans as text, writes the
// datarec.cfg kinst list, and produces the array-ranking report recovered
// from original_source/utils/visualize/randselect.py.
//
// Grounded on hase.py's getRecInstsInfo and printCandidateRecInstsInfo.
package report
