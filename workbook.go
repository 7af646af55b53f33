package htmlgrid

// SheetCell is a single styled cell value.
type SheetCell struct {
	Value string
	Style *StyleDescriptor
}

// SheetRow maps zero-based column numbers to cell values. Absent columns
// are empty.
type SheetRow map[int]SheetCell

// MergeRange is a rectangular region of a sheet that a spreadsheet
// viewer renders as one visually joined cell. Coordinates are zero-based
// and inclusive.
type MergeRange struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// SheetModel is one named tab of a workbook.
type SheetModel struct {
	// Name is unique within the workbook, at most 31 characters, and
	// free of characters the target format disallows.
	Name string

	Rows   []SheetRow
	Merges []MergeRange

	// ColumnWidths maps zero-based column numbers to width hints.
	ColumnWidths map[int]int
}

// WorkbookModel is the abstract multi-sheet spreadsheet document handed
// to a SpreadsheetWriter.
type WorkbookModel struct {
	Sheets []SheetModel
}

// WorkbookBuilder composes extractor outputs into a workbook model. It
// performs no parsing and fails only with an EINTERNAL error when an
// upstream model is structurally inconsistent.
type WorkbookBuilder interface {
	BuildWorkbook(tables []*TableModel, records []ContentRecord) (*WorkbookModel, error)
}
