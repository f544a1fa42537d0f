package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"hase/graphstore"
)

type wireDocument struct {
	Nodes map[string]map[string]any `json:"nodes"`
	Edges []wireEdge                `json:"edges"`
}

type wireEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Decode reads the JSON graph description from r and converts it to a
// graphstore.Description. Node iteration order on the wire is a JSON
// object and therefore unordered; Decode imposes a deterministic order by
// sorting node ids, so two decodes of the same bytes always produce the
// same graphstore.Description.Order.
func Decode(r io.Reader) (*graphstore.Description, error) {
	var doc wireDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, &DecodeError{Msg: "invalid JSON graph description", Err: err}
	}
	if doc.Nodes == nil {
		return nil, &SchemaError{Field: "nodes", Msg: "required field is missing"}
	}

	desc := &graphstore.Description{
		Vertices: make(map[string]*graphstore.Vertex, len(doc.Nodes)),
		Dummy:    make(map[string]bool, len(doc.Nodes)),
	}

	ids := make([]string, 0, len(doc.Nodes))
	for id := range doc.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		a := newAttrs(doc.Nodes[id])
		kindRaw, hasKind := a["kind"]
		if !hasKind {
			desc.Dummy[id] = true
			desc.Order = append(desc.Order, id)
			desc.Vertices[id] = &graphstore.Vertex{ID: id}
			continue
		}

		v := &graphstore.Vertex{ID: id, Kind: resolveKind(kindRaw)}
		if ki, ok := a.str("kinst"); ok {
			v.KInst = ki
		}
		if w, ok := a.num("width"); ok {
			v.Width = int(w)
		}
		if f, ok := a.num("freq"); ok {
			v.Freq = uint64(f)
		}
		v.IsPointer = a.flag("ispointer")
		if cat, ok := a.str("category"); ok {
			v.Category = resolveCategory(cat)
		}
		if root, ok := a.str("root"); ok {
			v.Root = root
		}

		desc.Order = append(desc.Order, id)
		desc.Vertices[id] = v
	}

	for _, e := range doc.Edges {
		if e.Source == "" || e.Target == "" {
			return nil, &SchemaError{Field: "edges", Msg: "edge missing source or target"}
		}
		w := graphstore.EdgeWeight(e.Weight)
		if !w.Valid() {
			return nil, &SemanticError{Msg: fmt.Sprintf("edge %s->%s has weight %v, want 1.0 or 1.5", e.Source, e.Target, e.Weight)}
		}
		desc.Edges = append(desc.Edges, graphstore.Edge{From: e.Source, To: e.Target, Weight: w})
	}

	return desc, nil
}
