// Package excelize writes workbook models as .xlsx container files using
// github.com/xuri/excelize/v2. It is the only package that knows the
// container format; the conversion core hands it a finished model.
package excelize

import (
	"context"

	"github.com/jswierad/htmlgrid"
	"github.com/xuri/excelize/v2"
)

// Ensure Writer implements htmlgrid.SpreadsheetWriter at compile time.
var _ htmlgrid.SpreadsheetWriter = (*Writer)(nil)

// Writer writes workbook models to .xlsx files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteWorkbook writes one worksheet per sheet model: cell values at
// their A1-style coordinates, declared merge ranges, per-cell styles,
// and column width hints. Encoding and filesystem failures surface as
// EIO errors.
func (w *Writer) WriteWorkbook(ctx context.Context, wb *htmlgrid.WorkbookModel, path string) error {
	if wb == nil || len(wb.Sheets) == 0 {
		return htmlgrid.Errorf(htmlgrid.EINVALID, "workbook has no sheets")
	}
	if err := ctx.Err(); err != nil {
		return htmlgrid.Errorf(htmlgrid.ECANCELED, "write workbook %q: %v", path, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	// Style descriptors are shared by reference, so identical roles
	// resolve to one format record in the container.
	styleIDs := map[*htmlgrid.StyleDescriptor]int{}

	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return htmlgrid.Errorf(htmlgrid.EIO, "name sheet %q: %v", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return htmlgrid.Errorf(htmlgrid.EIO, "create sheet %q: %v", sheet.Name, err)
		}

		if err := writeSheet(f, sheet, styleIDs); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return htmlgrid.Errorf(htmlgrid.EIO, "write workbook %q: %v", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet htmlgrid.SheetModel, styleIDs map[*htmlgrid.StyleDescriptor]int) error {
	for ri, row := range sheet.Rows {
		for col, cell := range row {
			axis, err := excelize.CoordinatesToCellName(col+1, ri+1)
			if err != nil {
				return htmlgrid.Errorf(htmlgrid.EINTERNAL, "sheet %q: bad coordinates (%d,%d): %v", sheet.Name, ri, col, err)
			}
			if err := f.SetCellValue(sheet.Name, axis, cell.Value); err != nil {
				return htmlgrid.Errorf(htmlgrid.EIO, "sheet %q: set %s: %v", sheet.Name, axis, err)
			}
			if cell.Style != nil {
				id, err := styleID(f, styleIDs, cell.Style)
				if err != nil {
					return htmlgrid.Errorf(htmlgrid.EIO, "sheet %q: register style: %v", sheet.Name, err)
				}
				if err := f.SetCellStyle(sheet.Name, axis, axis, id); err != nil {
					return htmlgrid.Errorf(htmlgrid.EIO, "sheet %q: style %s: %v", sheet.Name, axis, err)
				}
			}
		}
	}

	for _, m := range sheet.Merges {
		start, err := excelize.CoordinatesToCellName(m.StartCol+1, m.StartRow+1)
		if err != nil {
			return htmlgrid.Errorf(htmlgrid.EINTERNAL, "sheet %q: bad merge start: %v", sheet.Name, err)
		}
		end, err := excelize.CoordinatesToCellName(m.EndCol+1, m.EndRow+1)
		if err != nil {
			return htmlgrid.Errorf(htmlgrid.EINTERNAL, "sheet %q: bad merge end: %v", sheet.Name, err)
		}
		if err := f.MergeCell(sheet.Name, start, end); err != nil {
			return htmlgrid.Errorf(htmlgrid.EIO, "sheet %q: merge %s:%s: %v", sheet.Name, start, end, err)
		}
	}

	for col, width := range sheet.ColumnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return htmlgrid.Errorf(htmlgrid.EINTERNAL, "sheet %q: bad column %d: %v", sheet.Name, col, err)
		}
		if err := f.SetColWidth(sheet.Name, name, name, float64(width)); err != nil {
			return htmlgrid.Errorf(htmlgrid.EIO, "sheet %q: width %s: %v", sheet.Name, name, err)
		}
	}

	return nil
}

func styleID(f *excelize.File, cache map[*htmlgrid.StyleDescriptor]int, sd *htmlgrid.StyleDescriptor) (int, error) {
	if id, ok := cache[sd]; ok {
		return id, nil
	}

	style := &excelize.Style{
		Font: &excelize.Font{Bold: sd.Bold, Size: float64(sd.FontSize)},
	}
	if sd.FontColor != "" {
		style.Font.Color = sd.FontColor
	}
	if sd.FillColor != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{sd.FillColor}}
	}

	id, err := f.NewStyle(style)
	if err != nil {
		return 0, err
	}
	cache[sd] = id
	return id, nil
}
