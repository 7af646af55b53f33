package excelize_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jswierad/htmlgrid"
	hgexcelize "github.com/jswierad/htmlgrid/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriter_WriteWorkbook(t *testing.T) {
	t.Parallel()

	t.Run("round-trips sheets, values, merges, and widths", func(t *testing.T) {
		t.Parallel()

		header := htmlgrid.StyleFor(htmlgrid.RoleHeaderRow)
		body := htmlgrid.StyleFor(htmlgrid.RoleBodyCell)

		wb := &htmlgrid.WorkbookModel{
			Sheets: []htmlgrid.SheetModel{
				{
					Name: "Summary",
					Rows: []htmlgrid.SheetRow{
						{0: {Value: "Conversion Summary", Style: header}},
					},
				},
				{
					Name: "Table_1",
					Rows: []htmlgrid.SheetRow{
						{0: {Value: "merged", Style: header}, 2: {Value: "side", Style: body}},
						{2: {Value: "below", Style: body}},
					},
					Merges: []htmlgrid.MergeRange{
						{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1},
					},
					ColumnWidths: map[int]int{0: 20, 2: 12},
				},
			},
		}

		path := filepath.Join(t.TempDir(), "out.xlsx")
		w := hgexcelize.NewWriter()
		require.NoError(t, w.WriteWorkbook(context.Background(), wb, path))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Summary", "Table_1"}, f.GetSheetList())

		got, err := f.GetCellValue("Summary", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Conversion Summary", got)

		got, err = f.GetCellValue("Table_1", "C2")
		require.NoError(t, err)
		assert.Equal(t, "below", got)

		merges, err := f.GetMergeCells("Table_1")
		require.NoError(t, err)
		require.Len(t, merges, 1)
		assert.Equal(t, "A1", merges[0].GetStartAxis())
		assert.Equal(t, "B2", merges[0].GetEndAxis())

		width, err := f.GetColWidth("Table_1", "A")
		require.NoError(t, err)
		assert.InDelta(t, 20, width, 0.01)
	})

	t.Run("styles survive the round trip", func(t *testing.T) {
		t.Parallel()

		wb := &htmlgrid.WorkbookModel{
			Sheets: []htmlgrid.SheetModel{
				{
					Name: "Styled",
					Rows: []htmlgrid.SheetRow{
						{0: {Value: "head", Style: htmlgrid.StyleFor(htmlgrid.RoleHeaderRow)}},
						{0: {Value: "body", Style: htmlgrid.StyleFor(htmlgrid.RoleBodyCell)}},
					},
				},
			},
		}

		path := filepath.Join(t.TempDir(), "styled.xlsx")
		w := hgexcelize.NewWriter()
		require.NoError(t, w.WriteWorkbook(context.Background(), wb, path))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		id, err := f.GetCellStyle("Styled", "A1")
		require.NoError(t, err)
		style, err := f.GetStyle(id)
		require.NoError(t, err)
		require.NotNil(t, style.Font)
		assert.True(t, style.Font.Bold)

		id, err = f.GetCellStyle("Styled", "A2")
		require.NoError(t, err)
		style, err = f.GetStyle(id)
		require.NoError(t, err)
		if style.Font != nil {
			assert.False(t, style.Font.Bold)
		}
	})

	t.Run("rejects empty workbook", func(t *testing.T) {
		t.Parallel()

		w := hgexcelize.NewWriter()
		err := w.WriteWorkbook(context.Background(), &htmlgrid.WorkbookModel{}, "unused.xlsx")
		require.Error(t, err)
		assert.Equal(t, htmlgrid.EINVALID, htmlgrid.ErrorCode(err))
	})

	t.Run("fails with io error on unwritable path", func(t *testing.T) {
		t.Parallel()

		wb := &htmlgrid.WorkbookModel{
			Sheets: []htmlgrid.SheetModel{{Name: "Only"}},
		}

		w := hgexcelize.NewWriter()
		err := w.WriteWorkbook(context.Background(), wb, filepath.Join(t.TempDir(), "missing", "out.xlsx"))
		require.Error(t, err)
		assert.Equal(t, htmlgrid.EIO, htmlgrid.ErrorCode(err))
	})

	t.Run("observes prior cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		wb := &htmlgrid.WorkbookModel{
			Sheets: []htmlgrid.SheetModel{{Name: "Only"}},
		}

		w := hgexcelize.NewWriter()
		err := w.WriteWorkbook(ctx, wb, filepath.Join(t.TempDir(), "out.xlsx"))
		require.Error(t, err)
		assert.Equal(t, htmlgrid.ECANCELED, htmlgrid.ErrorCode(err))
	})
}
