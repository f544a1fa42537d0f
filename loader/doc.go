// Package loader decodes the JSON graph-description format into a
// graphstore.Description. Attribute keys are case-insensitive on the
// wire; a vertex with no "kind" attribute at all is a dummy used only by
// the original visualization pipeline to scale edge width, and is carried
// through as graphstore.Description.Dummy rather than rejected.
package loader
