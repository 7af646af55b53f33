package mock

import "github.com/jswierad/htmlgrid"

var _ htmlgrid.WorkbookBuilder = (*WorkbookBuilder)(nil)

// WorkbookBuilder is a mock implementation of htmlgrid.WorkbookBuilder.
type WorkbookBuilder struct {
	BuildWorkbookFn func(tables []*htmlgrid.TableModel, records []htmlgrid.ContentRecord) (*htmlgrid.WorkbookModel, error)
}

func (b *WorkbookBuilder) BuildWorkbook(tables []*htmlgrid.TableModel, records []htmlgrid.ContentRecord) (*htmlgrid.WorkbookModel, error) {
	return b.BuildWorkbookFn(tables, records)
}
