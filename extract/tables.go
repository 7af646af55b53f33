package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jswierad/htmlgrid"
)

// Ensure TableExtractor implements htmlgrid.TableExtractor at compile time.
var _ htmlgrid.TableExtractor = (*TableExtractor)(nil)

// maxTableNesting bounds how deep tables may nest inside each other's
// cells before the inner table is skipped with a warning.
const maxTableNesting = 16

// maxSpan caps a single cell's declared span so an absurd attribute value
// cannot make the occupancy grid explode.
const maxSpan = 1000

// TableExtractor finds table nodes and resolves their span geometry into
// dense grids via an occupancy grid.
type TableExtractor struct{}

// NewTableExtractor creates a new TableExtractor.
func NewTableExtractor() *TableExtractor {
	return &TableExtractor{}
}

// ExtractTables walks the tree and returns every table as an independent
// model, indexed 1..N in document order. Nested tables are extracted at
// the point their enclosing cell is visited; the enclosing cell's text
// carries a "[Table N]" marker in their place.
func (e *TableExtractor) ExtractTables(root *htmlgrid.Node) (*htmlgrid.TableExtraction, error) {
	st := &tableState{}

	type frame struct {
		n     *htmlgrid.Node
		depth int
	}
	stack := []frame{{n: root}}
	truncated := false

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.n.Type != htmlgrid.ElementNode {
			continue
		}
		if f.n.Tag == "table" {
			st.resolve(f.n, 0)
			continue
		}
		if f.depth >= maxDepth {
			if !truncated {
				st.warnings = append(st.warnings, "element nesting exceeds depth bound; subtree skipped")
				truncated = true
			}
			continue
		}
		for i := len(f.n.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{n: f.n.Children[i], depth: f.depth + 1})
		}
	}

	return &htmlgrid.TableExtraction{Tables: st.tables, Warnings: st.warnings}, nil
}

// tableState carries the document-wide table counter so nested tables
// get their index at the point their enclosing cell is visited.
type tableState struct {
	counter  int
	tables   []*htmlgrid.TableModel
	warnings []string
}

// resolve turns one table node into a TableModel and appends it. It
// returns the table's assigned index, or 0 when the table was skipped.
func (st *tableState) resolve(table *htmlgrid.Node, nesting int) int {
	if nesting >= maxTableNesting {
		st.warnings = append(st.warnings, "table nesting exceeds bound; inner table skipped")
		return 0
	}

	st.counter++
	model := &htmlgrid.TableModel{Index: st.counter}
	st.tables = append(st.tables, model)

	g := &occupancyGrid{}
	for ri, tr := range rowNodes(table) {
		var row htmlgrid.RowModel
		col := 0
		for _, cn := range cellNodes(tr) {
			for g.occupied(ri, col) {
				col++
			}
			rs := st.spanValue(cn, "rowspan", model.Index)
			cs := st.spanValue(cn, "colspan", model.Index)
			row = append(row, htmlgrid.CellModel{
				Text:      st.cellText(cn, nesting),
				RowSpan:   rs,
				ColSpan:   cs,
				IsHeader:  cn.Tag == "th",
				OriginRow: ri,
				OriginCol: col,
			})
			g.occupy(ri, col, rs, cs)
			col += cs
		}
		model.Rows = append(model.Rows, row)
	}

	model.ColumnCount = g.width
	model.HasHeader = headerRow(model.Rows)

	return model.Index
}

// headerRow reports whether the table's first row is non-empty and made
// entirely of header cells.
func headerRow(rows []htmlgrid.RowModel) bool {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return false
	}
	for _, cell := range rows[0] {
		if !cell.IsHeader {
			return false
		}
	}
	return true
}

// rowNodes returns the table's row nodes in document order, expanding
// thead/tbody/tfoot groups in place.
func rowNodes(table *htmlgrid.Node) []*htmlgrid.Node {
	var rows []*htmlgrid.Node
	for _, c := range table.Children {
		switch c.Tag {
		case "tr":
			rows = append(rows, c)
		case "thead", "tbody", "tfoot":
			for _, cc := range c.Children {
				if cc.IsElement("tr") {
					rows = append(rows, cc)
				}
			}
		}
	}
	return rows
}

// cellNodes returns a row's direct cell nodes in document order.
func cellNodes(tr *htmlgrid.Node) []*htmlgrid.Node {
	var cells []*htmlgrid.Node
	for _, c := range tr.Children {
		if c.IsElement("td") || c.IsElement("th") {
			cells = append(cells, c)
		}
	}
	return cells
}

// spanValue reads a span attribute, clamping malformed values to 1 and
// absurd values to maxSpan, recording a warning either way.
func (st *tableState) spanValue(cell *htmlgrid.Node, attr string, tableIndex int) int {
	raw, ok := cell.Attr[attr]
	if !ok {
		return 1
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		st.warnings = append(st.warnings,
			fmt.Sprintf("table %d: %s %q clamped to 1", tableIndex, attr, raw))
		return 1
	}
	if v > maxSpan {
		st.warnings = append(st.warnings,
			fmt.Sprintf("table %d: %s %d clamped to %d", tableIndex, attr, v, maxSpan))
		return maxSpan
	}
	return v
}

// cellText flattens a cell's text, resolving any nested table at the
// point it appears and substituting a "[Table N]" marker for it.
func (st *tableState) cellText(cell *htmlgrid.Node, nesting int) string {
	var parts []string

	stack := []*htmlgrid.Node{}
	for i := len(cell.Children) - 1; i >= 0; i-- {
		stack = append(stack, cell.Children[i])
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.Type == htmlgrid.TextNode {
			parts = append(parts, n.Text)
			continue
		}
		if n.Tag == "table" {
			if idx := st.resolve(n, nesting+1); idx > 0 {
				parts = append(parts, fmt.Sprintf("[Table %d]", idx))
			}
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}

	return collapse(strings.Join(parts, " "))
}

// occupancyGrid tracks which grid coordinates are already claimed by an
// earlier cell's span. Rows grow on demand.
type occupancyGrid struct {
	cells [][]bool
	width int
}

func (g *occupancyGrid) occupied(row, col int) bool {
	return row < len(g.cells) && col < len(g.cells[row]) && g.cells[row][col]
}

func (g *occupancyGrid) occupy(row, col, rowSpan, colSpan int) {
	for r := row; r < row+rowSpan; r++ {
		for len(g.cells) <= r {
			g.cells = append(g.cells, nil)
		}
		for len(g.cells[r]) < col+colSpan {
			g.cells[r] = append(g.cells[r], false)
		}
		for c := col; c < col+colSpan; c++ {
			g.cells[r][c] = true
		}
	}
	if col+colSpan > g.width {
		g.width = col + colSpan
	}
}
