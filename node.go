package htmlgrid

// NodeType discriminates the two Node variants.
type NodeType int

// Node variants.
const (
	ElementNode NodeType = iota
	TextNode
)

// Node is a single node of a parsed document tree: either an element with
// a tag, attributes, and children, or a text node with content. The tree
// is immutable once parsed and owned by the parse result that produced it.
type Node struct {
	Type NodeType

	// Tag is the lowercase element tag name. Empty for text nodes.
	Tag string

	// Attr holds element attributes keyed by lowercase name. Nil for
	// text nodes and attribute-less elements.
	Attr map[string]string

	// Text is the node's text content. Empty for element nodes.
	Text string

	Children []*Node
}

// IsElement reports whether the node is an element with the given tag.
func (n *Node) IsElement(tag string) bool {
	return n.Type == ElementNode && n.Tag == tag
}

// AttrOr returns the value of the named attribute, or def if the
// attribute is absent.
func (n *Node) AttrOr(key, def string) string {
	if v, ok := n.Attr[key]; ok {
		return v
	}
	return def
}
