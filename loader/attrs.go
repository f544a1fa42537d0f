package loader

import (
	"fmt"
	"strings"

	"hase/graphstore"
)

// attrs is a case-insensitive view over one node's raw JSON attribute map,
// per spec.md §6: "attributes are case-insensitive at load time".
type attrs map[string]any

func newAttrs(raw map[string]any) attrs {
	out := make(attrs, len(raw))
	for k, v := range raw {
		out[strings.ToLower(k)] = v
	}

	return out
}

func (a attrs) str(key string) (string, bool) {
	v, ok := a[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)

	return s, ok
}

// num accepts either a JSON number or a stringly-typed number, per spec.md
// §9's Design Note on mixed runtime typing of source attributes.
func (a attrs) num(key string) (float64, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		var f float64
		if _, err := fmt.Sscanf(n, "%g", &f); err == nil {
			return f, true
		}
	}

	return 0, false
}

func (a attrs) flag(key string) bool {
	v, ok := a[key]
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true")
	}

	return false
}

// resolveKind canonicalizes the wire Kind attribute (int 0, int 3, the
// string "UN", equivalent numeric strings, or anything else) into a
// graphstore.Kind, per the original source's 0 == ConstantExpr, 3 ==
// ReadExpr, "UN" == UpdateNode convention.
func resolveKind(raw any) graphstore.Kind {
	switch v := raw.(type) {
	case string:
		switch {
		case strings.EqualFold(v, "UN"):
			return graphstore.KindUpdateNode
		case v == "0":
			return graphstore.KindConstant
		case v == "3":
			return graphstore.KindRead
		default:
			return graphstore.KindOther
		}
	case float64:
		switch v {
		case 0:
			return graphstore.KindConstant
		case 3:
			return graphstore.KindRead
		default:
			return graphstore.KindOther
		}
	default:
		return graphstore.KindOther
	}
}

func resolveCategory(s string) graphstore.Category {
	switch strings.ToUpper(s) {
	case "Q":
		return graphstore.CategoryQuery
	case "C":
		return graphstore.CategoryConstraint
	default:
		return graphstore.CategoryNormal
	}
}
