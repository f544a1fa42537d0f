package graphstore

import "errors"

// Kind is a closed tag describing what a Vertex represents. The wire format
// mixes numeric codes (0, 3, ...) and the literal string "UN" for the same
// concept; Kind canonicalizes all of that at load time so no later code ever
// compares a kind against a string (spec Design Note: "the source compares
// kind == '0' in some places and kind == 0 in others").
type Kind uint8

const (
	// KindOther is any operator/expression vertex that is not a constant,
	// a read, or an update node (e.g. Add, Concat, Select, ...).
	KindOther Kind = iota
	// KindConstant is a ConstantExpr: it has no symbolic operands and is
	// always already concretized.
	KindConstant
	// KindRead is a ReadExpr: a symbolic read from an array, with a Root
	// array-name attribute.
	KindRead
	// KindUpdateNode is a write into a symbolic array ("UN" on the wire),
	// with a Root array-name attribute.
	KindUpdateNode
)

// Category partitions vertices at the query boundary: only Query vertices
// are auto-selected as recording targets unless --ignore-evaluation is set.
type Category uint8

const (
	CategoryNormal Category = iota
	CategoryQuery
	CategoryConstraint
)

// EdgeWeight is restricted to the two values the expression DAG can encode:
// a direct operand (1.0) or an indirect/index operand (1.5). Any other
// value is a fatal load-time error.
type EdgeWeight float64

const (
	// WeightDirect marks a normal operand edge.
	WeightDirect EdgeWeight = 1.0
	// WeightIndirect marks a symbolic array-index operand edge; it
	// increases the indirect depth of its target by one.
	WeightIndirect EdgeWeight = 1.5
)

// Valid reports whether w is one of the two weights the model allows.
func (w EdgeWeight) Valid() bool {
	return w == WeightDirect || w == WeightIndirect
}

// Sentinel errors for graphstore construction.
var (
	// ErrInvalidEdgeWeight is returned when an edge carries a weight other
	// than 1.0 or 1.5.
	ErrInvalidEdgeWeight = errors.New("graphstore: invalid edge weight")
	// ErrDuplicateVertex is returned when a Description lists the same
	// vertex id twice.
	ErrDuplicateVertex = errors.New("graphstore: duplicate vertex id")
	// ErrDanglingEdge is returned when an edge references a vertex id not
	// present in the Description (after dummy-vertex filtering).
	ErrDanglingEdge = errors.New("graphstore: edge endpoint not found")
)

// Vertex is one symbolic expression produced by the trace.
type Vertex struct {
	// ID uniquely identifies this vertex within its GraphStore.
	ID string

	// Kind classifies the expression; see Kind.
	Kind Kind

	// KInst is the instruction identifier that produced this vertex, or
	// "" / "N/A" if none. Use Valid to test recordability.
	KInst string

	// Width is the bit width of the produced value. Must be > 0 whenever
	// KInst is Valid.
	Width int

	// Freq is the execution frequency of the producing instruction.
	Freq uint64

	// IsPointer marks vertices whose recorded value is a pointer.
	IsPointer bool

	// Category is used only at the query boundary to select targets.
	Category Category

	// Root is the raw array-name attribute (possibly with a bracketed
	// size suffix, e.g. "buf[64]"); use ArrayName to strip the suffix.
	Root string
}

// Valid reports whether v's KInst identifies a recordable instruction:
// non-empty and not the literal "N/A".
func (v *Vertex) Valid() bool {
	return v.KInst != "" && v.KInst != "N/A"
}

// Edge is a directed dependency from a dependant (operator) vertex to a
// dependency (operand) vertex.
type Edge struct {
	From   string
	To     string
	Weight EdgeWeight
}
