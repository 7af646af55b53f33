package mock

import "github.com/jswierad/htmlgrid"

var _ htmlgrid.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of htmlgrid.TableExtractor.
type TableExtractor struct {
	ExtractTablesFn func(root *htmlgrid.Node) (*htmlgrid.TableExtraction, error)
}

func (e *TableExtractor) ExtractTables(root *htmlgrid.Node) (*htmlgrid.TableExtraction, error) {
	return e.ExtractTablesFn(root)
}

var _ htmlgrid.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of htmlgrid.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(root *htmlgrid.Node) (*htmlgrid.ContentExtraction, error)
}

func (e *ContentExtractor) ExtractContent(root *htmlgrid.Node) (*htmlgrid.ContentExtraction, error) {
	return e.ExtractContentFn(root)
}
