package mock

import (
	"context"

	"github.com/jswierad/htmlgrid"
)

var _ htmlgrid.ConversionService = (*ConversionService)(nil)

// ConversionService is a mock implementation of htmlgrid.ConversionService.
type ConversionService struct {
	RecordConversionFn   func(ctx context.Context, report *htmlgrid.ConversionReport) error
	FindConversionByIDFn func(ctx context.Context, id string) (*htmlgrid.ConversionReport, error)
	FindConversionsFn    func(ctx context.Context, filter htmlgrid.ConversionFilter) ([]*htmlgrid.ConversionReport, error)
	DeleteConversionFn   func(ctx context.Context, id string) error
}

func (s *ConversionService) RecordConversion(ctx context.Context, report *htmlgrid.ConversionReport) error {
	return s.RecordConversionFn(ctx, report)
}

func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*htmlgrid.ConversionReport, error) {
	return s.FindConversionByIDFn(ctx, id)
}

func (s *ConversionService) FindConversions(ctx context.Context, filter htmlgrid.ConversionFilter) ([]*htmlgrid.ConversionReport, error) {
	return s.FindConversionsFn(ctx, filter)
}

func (s *ConversionService) DeleteConversion(ctx context.Context, id string) error {
	return s.DeleteConversionFn(ctx, id)
}
