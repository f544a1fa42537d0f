// Package layout is the optional visualization shell: it assigns a
// display color to every vertex touched by a recording plan and arranges
// a graph with a force-directed layout for rendering.
//
// Grounded on hase.py's ColorCSet/MarkNodesRedByID/MarkNodesWhiteByID and
// on gonum's graph/layout EadesR2 example.
package layout
