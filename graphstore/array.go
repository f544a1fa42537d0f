package graphstore

import "strings"

// ArrayName strips a trailing bracketed size suffix (e.g. "buf[64]" ->
// "buf") from a vertex's Root attribute, used by the update-list pass to
// match against the caller's requested array names.
func ArrayName(root string) string {
	if i := strings.IndexByte(root, '['); i >= 0 {
		return root[:i]
	}

	return root
}
