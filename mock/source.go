package mock

import (
	"context"

	"github.com/jswierad/htmlgrid"
)

var _ htmlgrid.Source = (*Source)(nil)

// Source is a mock implementation of htmlgrid.Source.
type Source struct {
	NameFn func() string
	ReadFn func(ctx context.Context) (string, error)
}

func (s *Source) Name() string {
	return s.NameFn()
}

func (s *Source) Read(ctx context.Context) (string, error) {
	return s.ReadFn(ctx)
}
