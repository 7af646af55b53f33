package mock

import "github.com/jswierad/htmlgrid"

var _ htmlgrid.Inspector = (*Inspector)(nil)

// Inspector is a mock implementation of htmlgrid.Inspector.
type Inspector struct {
	InspectFn func(html string) (*htmlgrid.DocumentStats, error)
}

func (i *Inspector) Inspect(html string) (*htmlgrid.DocumentStats, error) {
	return i.InspectFn(html)
}
