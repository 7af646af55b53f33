package htmlgrid

// CellModel is a single table cell placed at its resolved grid origin.
// A merged cell is represented once at its origin; spanned-over
// coordinates are implicit and covered by the declared merge range.
type CellModel struct {
	Text string

	// RowSpan and ColSpan are always at least 1; malformed span values
	// in the source markup are clamped during extraction.
	RowSpan int
	ColSpan int

	// IsHeader reports whether the cell came from a header-type tag.
	IsHeader bool

	// OriginRow and OriginCol are the cell's resolved grid coordinates,
	// zero-based.
	OriginRow int
	OriginCol int
}

// RowModel is one table row's cells in document order, at resolved grid
// coordinates.
type RowModel []CellModel

// TableModel is a table resolved into a dense grid. Every row's cells
// cover [0, ColumnCount) with no gaps or overlaps after span resolution;
// ragged source rows leave trailing columns empty.
type TableModel struct {
	// Index is the table's 1-based position in document order, nested
	// tables included.
	Index int

	Rows        []RowModel
	ColumnCount int

	// HasHeader reports whether the first row is a header row (every
	// direct cell in it is a header-type cell).
	HasHeader bool
}

// Validate returns an EINTERNAL error if the model violates its grid
// invariants. A failure here indicates a programming defect in the
// extractor, not bad input.
func (t *TableModel) Validate() error {
	if t.Index < 1 {
		return Errorf(EINTERNAL, "table index %d out of range", t.Index)
	}
	if t.ColumnCount < 0 {
		return Errorf(EINTERNAL, "table %d: negative column count %d", t.Index, t.ColumnCount)
	}
	for ri, row := range t.Rows {
		for _, cell := range row {
			if cell.RowSpan < 1 || cell.ColSpan < 1 {
				return Errorf(EINTERNAL, "table %d: cell at (%d,%d) has unclamped span %dx%d",
					t.Index, cell.OriginRow, cell.OriginCol, cell.RowSpan, cell.ColSpan)
			}
			if cell.OriginRow != ri {
				return Errorf(EINTERNAL, "table %d: cell origin row %d found in row %d",
					t.Index, cell.OriginRow, ri)
			}
			if cell.OriginCol < 0 || cell.OriginCol+cell.ColSpan > t.ColumnCount {
				return Errorf(EINTERNAL, "table %d: cell at (%d,%d) spans outside [0,%d)",
					t.Index, cell.OriginRow, cell.OriginCol, t.ColumnCount)
			}
		}
	}
	return nil
}
