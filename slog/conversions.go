package slog

import (
	"context"
	"log/slog"

	"github.com/jswierad/htmlgrid"
)

// Ensure LoggingConversionService implements htmlgrid.ConversionService.
var _ htmlgrid.ConversionService = (*LoggingConversionService)(nil)

// LoggingConversionService wraps a ConversionService with logging for
// recorded conversions.
type LoggingConversionService struct {
	next   htmlgrid.ConversionService
	logger *slog.Logger
}

// NewLoggingConversionService creates a new LoggingConversionService.
func NewLoggingConversionService(next htmlgrid.ConversionService, logger *slog.Logger) *LoggingConversionService {
	return &LoggingConversionService{next: next, logger: logger}
}

// RecordConversion delegates to the wrapped service and logs the report.
func (s *LoggingConversionService) RecordConversion(ctx context.Context, report *htmlgrid.ConversionReport) error {
	if err := s.next.RecordConversion(ctx, report); err != nil {
		return err
	}
	s.logger.Info("conversion recorded",
		"input", report.Input,
		"status", string(report.Status),
		"tables", report.TableCount,
		"records", report.ContentRecordCount,
		"warnings", len(report.Warnings),
	)
	return nil
}

// FindConversionByID delegates to the wrapped service.
func (s *LoggingConversionService) FindConversionByID(ctx context.Context, id string) (*htmlgrid.ConversionReport, error) {
	return s.next.FindConversionByID(ctx, id)
}

// FindConversions delegates to the wrapped service.
func (s *LoggingConversionService) FindConversions(ctx context.Context, filter htmlgrid.ConversionFilter) ([]*htmlgrid.ConversionReport, error) {
	return s.next.FindConversions(ctx, filter)
}

// DeleteConversion delegates to the wrapped service.
func (s *LoggingConversionService) DeleteConversion(ctx context.Context, id string) error {
	return s.next.DeleteConversion(ctx, id)
}
