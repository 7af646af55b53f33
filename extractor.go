package htmlgrid

// TableExtraction holds the tables found in a document tree along with
// warnings for tables that had to be degraded or skipped.
type TableExtraction struct {
	Tables   []*TableModel
	Warnings []string
}

// TableExtractor walks a parsed tree, finds table nodes including nested
// ones, and resolves their span geometry into dense grids.
type TableExtractor interface {
	ExtractTables(root *Node) (*TableExtraction, error)
}

// ContentExtraction holds the ordered content records extracted from a
// document tree along with warnings for truncated subtrees.
type ContentExtraction struct {
	Records  []ContentRecord
	Warnings []string
}

// ContentExtractor walks a parsed tree depth-first in document order and
// flattens non-table block content into ordered records. Table nodes
// produce only a TableRef record; their inner text is never emitted.
type ContentExtractor interface {
	ExtractContent(root *Node) (*ContentExtraction, error)
}
