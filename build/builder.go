// Package build composes extractor outputs into an abstract multi-sheet
// workbook model: a Summary sheet, one sheet per table, and a Content
// sheet. It performs no parsing; it fails only when an upstream model is
// structurally inconsistent, which is a programming defect rather than a
// user-facing input error.
package build

import (
	"fmt"
	"strings"

	"github.com/jswierad/htmlgrid"
)

// Ensure Builder implements htmlgrid.WorkbookBuilder at compile time.
var _ htmlgrid.WorkbookBuilder = (*Builder)(nil)

// Builder composes tables and content records into a workbook model.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildWorkbook produces the workbook: Summary first, then one sheet per
// table in index order, then Content. Sheet names are sanitized,
// truncated, and made unique within the workbook.
func (b *Builder) BuildWorkbook(tables []*htmlgrid.TableModel, records []htmlgrid.ContentRecord) (*htmlgrid.WorkbookModel, error) {
	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}

	names := NewSheetNamer()
	summaryName := names.Claim("Summary")
	tableNames := make(map[int]string, len(tables))
	for _, t := range tables {
		if _, dup := tableNames[t.Index]; dup {
			return nil, htmlgrid.Errorf(htmlgrid.EINTERNAL, "duplicate table index %d", t.Index)
		}
		tableNames[t.Index] = names.Claim(fmt.Sprintf("Table_%d", t.Index))
	}
	contentName := names.Claim("Content")

	wb := &htmlgrid.WorkbookModel{}
	wb.Sheets = append(wb.Sheets, summarySheet(summaryName, tables, tableNames, records))

	for _, t := range tables {
		sheet := tableSheet(tableNames[t.Index], t)
		wb.Sheets = append(wb.Sheets, sheet)
	}

	content, err := contentSheet(contentName, records, tableNames)
	if err != nil {
		return nil, err
	}
	wb.Sheets = append(wb.Sheets, content)

	return wb, nil
}

func summarySheet(name string, tables []*htmlgrid.TableModel, tableNames map[int]string, records []htmlgrid.ContentRecord) htmlgrid.SheetModel {
	title := htmlgrid.StyleFor(htmlgrid.RoleHeading1)
	header := htmlgrid.StyleFor(htmlgrid.RoleHeaderRow)
	body := htmlgrid.StyleFor(htmlgrid.RoleBodyCell)

	rows := []htmlgrid.SheetRow{
		{0: {Value: "Conversion Summary", Style: title}},
		{},
		{
			0: {Value: "Table", Style: header},
			1: {Value: "Rows", Style: header},
			2: {Value: "Columns", Style: header},
		},
	}

	if len(tables) == 0 {
		rows = append(rows, htmlgrid.SheetRow{0: {Value: "no tables found", Style: body}})
	}
	for _, t := range tables {
		rows = append(rows, htmlgrid.SheetRow{
			0: {Value: tableNames[t.Index], Style: body},
			1: {Value: fmt.Sprintf("%d", len(t.Rows)), Style: body},
			2: {Value: fmt.Sprintf("%d", t.ColumnCount), Style: body},
		})
	}

	rows = append(rows, htmlgrid.SheetRow{})
	rows = append(rows, htmlgrid.SheetRow{
		0: {Value: "Content records", Style: header},
		1: {Value: fmt.Sprintf("%d", len(records)), Style: body},
	})
	counts := countByKind(records)
	for _, kind := range []htmlgrid.RecordKind{
		htmlgrid.KindHeading, htmlgrid.KindParagraph, htmlgrid.KindListItem, htmlgrid.KindTableRef,
	} {
		if counts[kind] == 0 {
			continue
		}
		rows = append(rows, htmlgrid.SheetRow{
			0: {Value: kind.String(), Style: body},
			1: {Value: fmt.Sprintf("%d", counts[kind]), Style: body},
		})
	}

	return htmlgrid.SheetModel{
		Name:         name,
		Rows:         rows,
		ColumnWidths: map[int]int{0: 24, 1: 10, 2: 10},
	}
}

func countByKind(records []htmlgrid.ContentRecord) map[htmlgrid.RecordKind]int {
	counts := map[htmlgrid.RecordKind]int{}
	for _, r := range records {
		counts[r.Kind]++
	}
	return counts
}

func tableSheet(name string, t *htmlgrid.TableModel) htmlgrid.SheetModel {
	headerStyle := htmlgrid.StyleFor(htmlgrid.RoleHeaderRow)
	bodyStyle := htmlgrid.StyleFor(htmlgrid.RoleBodyCell)

	rows := make([]htmlgrid.SheetRow, len(t.Rows))
	var merges []htmlgrid.MergeRange

	for ri, row := range t.Rows {
		sheetRow := htmlgrid.SheetRow{}
		for _, cell := range row {
			style := bodyStyle
			if cell.IsHeader {
				style = headerStyle
			}
			sheetRow[cell.OriginCol] = htmlgrid.SheetCell{Value: cell.Text, Style: style}

			if cell.RowSpan > 1 || cell.ColSpan > 1 {
				merges = append(merges, htmlgrid.MergeRange{
					StartRow: cell.OriginRow,
					StartCol: cell.OriginCol,
					EndRow:   cell.OriginRow + cell.RowSpan - 1,
					EndCol:   cell.OriginCol + cell.ColSpan - 1,
				})
			}
		}
		rows[ri] = sheetRow
	}

	widths := htmlgrid.ColumnWidths(t)
	colWidths := make(map[int]int, len(widths))
	for col, w := range widths {
		colWidths[col] = w
	}

	return htmlgrid.SheetModel{
		Name:         name,
		Rows:         rows,
		Merges:       merges,
		ColumnWidths: colWidths,
	}
}

func contentSheet(name string, records []htmlgrid.ContentRecord, tableNames map[int]string) (htmlgrid.SheetModel, error) {
	rows := make([]htmlgrid.SheetRow, 0, len(records))

	for _, r := range records {
		var cell htmlgrid.SheetCell
		switch r.Kind {
		case htmlgrid.KindHeading:
			cell = htmlgrid.SheetCell{Value: r.Text, Style: htmlgrid.StyleFor(htmlgrid.HeadingRole(r.Level))}
		case htmlgrid.KindParagraph:
			cell = htmlgrid.SheetCell{Value: r.Text, Style: htmlgrid.StyleFor(htmlgrid.RoleParagraph)}
		case htmlgrid.KindListItem:
			indent := strings.Repeat("  ", r.Depth)
			marker := "• "
			if r.Ordered {
				marker = fmt.Sprintf("%d. ", r.Index)
			}
			cell = htmlgrid.SheetCell{Value: indent + marker + r.Text, Style: htmlgrid.StyleFor(htmlgrid.RoleListItem)}
		case htmlgrid.KindTableRef:
			sheet, ok := tableNames[r.TableIndex]
			if !ok {
				return htmlgrid.SheetModel{}, htmlgrid.Errorf(htmlgrid.EINTERNAL,
					"content record %d references unknown table %d", r.Seq, r.TableIndex)
			}
			cell = htmlgrid.SheetCell{Value: "see " + sheet, Style: htmlgrid.StyleFor(htmlgrid.RoleParagraph)}
		default:
			return htmlgrid.SheetModel{}, htmlgrid.Errorf(htmlgrid.EINTERNAL,
				"content record %d has unknown kind %d", r.Seq, r.Kind)
		}
		rows = append(rows, htmlgrid.SheetRow{0: cell})
	}

	return htmlgrid.SheetModel{
		Name:         name,
		Rows:         rows,
		ColumnWidths: map[int]int{0: htmlgrid.ContentColumnWidth},
	}, nil
}
