package htmlgrid

// ParseResult holds the tree produced by a parse along with any
// structural warnings accumulated while building it.
type ParseResult struct {
	// Root is a synthetic root element wrapping the whole document.
	Root *Node

	// Warnings lists recoverable structural problems (truncated
	// subtrees, malformed nesting). They degrade output but never
	// fail a parse.
	Warnings []string
}

// TreeParser turns raw markup text into a tolerant tree of typed nodes.
// Implementations must be lenient: malformed tag structure degrades to a
// best-effort tree with warnings, never an error. Parse fails with an
// EDECODE error only when the input is not decodable as text at all.
type TreeParser interface {
	Parse(text string) (*ParseResult, error)
}
