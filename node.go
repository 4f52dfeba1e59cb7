package sexpr

// Kind represents the kind of a parsed node.
type Kind int

// node kinds.
const (
	KindInteger Kind = iota // Signed 32-bit integer literal
	KindFloat               // Floating-point literal, stored as float64
	KindSymbol              // Bare symbol atom
	KindString              // Double-quoted string literal
	KindList                // Parenthesized list of nodes
)

// Node represents one parsed expression. Exactly one variant is populated,
// selected by Kind. A tree is built once during parsing and never mutated
// afterwards; lists own their children exclusively.
//
// Symbol and String text produced by ParseString is a view into the source
// string, which is safe because Go strings are immutable. Parse and Decode
// convert their byte input to a string up front, so no node ever aliases a
// mutable caller buffer.
type Node struct {
	Text  string  // Symbol or String text
	List  []Node  // List elements
	Kind  Kind    // Node kind
	Int   int32   // Integer value
	Float float64 // Float value
}
