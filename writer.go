package htmlgrid

import "context"

// SpreadsheetWriter writes a workbook model to a destination location in
// a spreadsheet container format: one worksheet per sheet model, cell
// values at their coordinates, declared merge ranges, and per-cell style
// attributes. Write failures surface as EIO errors.
type SpreadsheetWriter interface {
	WriteWorkbook(ctx context.Context, wb *WorkbookModel, path string) error
}
