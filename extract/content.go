package extract

import (
	"github.com/jswierad/htmlgrid"
)

// Ensure ContentExtractor implements htmlgrid.ContentExtractor at compile time.
var _ htmlgrid.ContentExtractor = (*ContentExtractor)(nil)

var skipTables = map[string]struct{}{"table": {}}

var skipListsAndTables = map[string]struct{}{"table": {}, "ul": {}, "ol": {}}

// ContentExtractor flattens non-table block content into ordered records.
// Sectioning wrappers are transparent: their children are visited in
// place and the wrapper itself produces no record.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// ExtractContent walks the tree depth-first in document order. Headings,
// paragraphs, and list items become records; table nodes produce a
// TableRef per table (nested ones included, in the same order the table
// extractor numbers them) and are never descended into for text.
func (e *ContentExtractor) ExtractContent(root *htmlgrid.Node) (*htmlgrid.ContentExtraction, error) {
	st := &contentState{}

	type cframe struct {
		n     *htmlgrid.Node
		depth int

		// lists is the count of list elements strictly above n.
		lists int

		// item marks a direct li child of a list, with its enclosing
		// list's order kind and the item's 1-based position.
		item    bool
		ordered bool
		index   int

		// scan marks frames below an emitted list item: only nested
		// lists and tables react, the item's own text is already out.
		scan bool
	}

	stack := []cframe{{n: root}}
	truncated := false

	push := func(frames []cframe) {
		for i := len(frames) - 1; i >= 0; i-- {
			stack = append(stack, frames[i])
		}
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.n

		if n.Type != htmlgrid.ElementNode {
			continue
		}
		if f.depth >= maxDepth {
			if !truncated {
				st.warnings = append(st.warnings, "element nesting exceeds depth bound; subtree skipped")
				truncated = true
			}
			continue
		}

		switch {
		case f.item:
			if text := flattenText(n, skipListsAndTables); text != "" {
				st.emit(htmlgrid.ContentRecord{
					Kind:    htmlgrid.KindListItem,
					Depth:   f.lists,
					Ordered: f.ordered,
					Index:   f.index,
					Text:    text,
				})
			}
			var frames []cframe
			for _, c := range n.Children {
				frames = append(frames, cframe{n: c, depth: f.depth + 1, lists: f.lists + 1, scan: true})
			}
			push(frames)

		case n.Tag == "table":
			st.tableRefs(n, 0)

		case n.Tag == "ul" || n.Tag == "ol":
			ordered := n.Tag == "ol"
			var frames []cframe
			index := 0
			for _, c := range n.Children {
				cf := cframe{n: c, depth: f.depth + 1, lists: f.lists + 1, scan: f.scan}
				if c.IsElement("li") {
					index++
					cf = cframe{
						n:       c,
						depth:   f.depth + 1,
						lists:   f.lists,
						item:    true,
						ordered: ordered,
						index:   index,
					}
				}
				frames = append(frames, cf)
			}
			push(frames)

		case !f.scan && headingLevel(n.Tag) > 0:
			if text := flattenText(n, skipTables); text != "" {
				st.emit(htmlgrid.ContentRecord{
					Kind:  htmlgrid.KindHeading,
					Level: headingLevel(n.Tag),
					Text:  text,
				})
			}
			st.nestedTableRefs(n)

		case !f.scan && n.Tag == "p":
			if text := flattenText(n, skipTables); text != "" {
				st.emit(htmlgrid.ContentRecord{
					Kind: htmlgrid.KindParagraph,
					Text: text,
				})
			}
			st.nestedTableRefs(n)

		default:
			var frames []cframe
			for _, c := range n.Children {
				frames = append(frames, cframe{n: c, depth: f.depth + 1, lists: f.lists, scan: f.scan})
			}
			push(frames)
		}
	}

	return &htmlgrid.ContentExtraction{Records: st.records, Warnings: st.warnings}, nil
}

// contentState numbers records and mirrors the table extractor's
// document-order table counter so TableRef indices line up.
type contentState struct {
	seq      int
	counter  int
	records  []htmlgrid.ContentRecord
	warnings []string
}

func (st *contentState) emit(rec htmlgrid.ContentRecord) {
	rec.Seq = st.seq
	st.seq++
	st.records = append(st.records, rec)
}

// tableRefs emits a TableRef for the table and each table nested in its
// cells, visiting rows and cells exactly the way the table extractor
// does so the two walks assign identical indices. Recursion depth is
// bounded by maxTableNesting.
func (st *contentState) tableRefs(table *htmlgrid.Node, nesting int) {
	if nesting >= maxTableNesting {
		return
	}

	st.counter++
	st.emit(htmlgrid.ContentRecord{
		Kind:       htmlgrid.KindTableRef,
		TableIndex: st.counter,
	})

	for _, tr := range rowNodes(table) {
		for _, cell := range cellNodes(tr) {
			stack := []*htmlgrid.Node{}
			for i := len(cell.Children) - 1; i >= 0; i-- {
				stack = append(stack, cell.Children[i])
			}
			for len(stack) > 0 {
				n := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if n.Type != htmlgrid.ElementNode {
					continue
				}
				if n.Tag == "table" {
					st.tableRefs(n, nesting+1)
					continue
				}
				for i := len(n.Children) - 1; i >= 0; i-- {
					stack = append(stack, n.Children[i])
				}
			}
		}
	}
}

// nestedTableRefs emits refs for tables hiding inside an emitted leaf's
// subtree, keeping the table counter aligned with the table extractor,
// which resolves tables wherever they occur.
func (st *contentState) nestedTableRefs(n *htmlgrid.Node) {
	stack := []*htmlgrid.Node{}
	for i := len(n.Children) - 1; i >= 0; i-- {
		stack = append(stack, n.Children[i])
	}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.Type != htmlgrid.ElementNode {
			continue
		}
		if c.Tag == "table" {
			st.tableRefs(c, 0)
			continue
		}
		for i := len(c.Children) - 1; i >= 0; i-- {
			stack = append(stack, c.Children[i])
		}
	}
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}
