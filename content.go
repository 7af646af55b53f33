package htmlgrid

// RecordKind discriminates ContentRecord variants.
type RecordKind int

// Content record kinds.
const (
	KindHeading RecordKind = iota
	KindParagraph
	KindListItem
	KindTableRef
)

// String returns a short label for the record kind.
func (k RecordKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindListItem:
		return "list_item"
	case KindTableRef:
		return "table_ref"
	}
	return "unknown"
}

// ContentRecord is one flattened block of non-table document content.
// Document order is preserved via the monotonically increasing Seq.
type ContentRecord struct {
	// Seq is the record's position in document order, starting at 0.
	Seq int

	Kind RecordKind

	// Level is the heading rank, 1-6. Set only for KindHeading.
	Level int

	// Text is the record's flattened text with whitespace collapsed.
	// Empty for KindTableRef.
	Text string

	// Depth is the count of ancestor list elements above the item's own
	// list, starting at 0. Set only for KindListItem.
	Depth int

	// Ordered reports whether the immediately enclosing list is
	// numbered. Set only for KindListItem.
	Ordered bool

	// Index is the item's 1-based position within its immediate parent
	// list. Set only for KindListItem.
	Index int

	// TableIndex is the 1-based index of the referenced table. Set only
	// for KindTableRef.
	TableIndex int
}
