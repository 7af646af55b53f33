package mock

import (
	"context"

	"github.com/jswierad/htmlgrid"
)

var _ htmlgrid.SpreadsheetWriter = (*SpreadsheetWriter)(nil)

// SpreadsheetWriter is a mock implementation of htmlgrid.SpreadsheetWriter.
type SpreadsheetWriter struct {
	WriteWorkbookFn func(ctx context.Context, wb *htmlgrid.WorkbookModel, path string) error
}

func (w *SpreadsheetWriter) WriteWorkbook(ctx context.Context, wb *htmlgrid.WorkbookModel, path string) error {
	return w.WriteWorkbookFn(ctx, wb, path)
}
