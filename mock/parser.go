package mock

import "github.com/jswierad/htmlgrid"

var _ htmlgrid.TreeParser = (*TreeParser)(nil)

// TreeParser is a mock implementation of htmlgrid.TreeParser.
type TreeParser struct {
	ParseFn func(text string) (*htmlgrid.ParseResult, error)
}

func (p *TreeParser) Parse(text string) (*htmlgrid.ParseResult, error) {
	return p.ParseFn(text)
}
