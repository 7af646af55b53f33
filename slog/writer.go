// Package slog provides log/slog decorators for pipeline collaborators.
// The conversion core itself reports diagnostics through warning lists on
// the report; these decorators add operator-facing logging at the edges
// without threading a logger through every component.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jswierad/htmlgrid"
)

// Ensure LoggingWriter implements htmlgrid.SpreadsheetWriter.
var _ htmlgrid.SpreadsheetWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a SpreadsheetWriter with write logging.
type LoggingWriter struct {
	next   htmlgrid.SpreadsheetWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next htmlgrid.SpreadsheetWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteWorkbook delegates to the wrapped writer and logs the outcome.
func (w *LoggingWriter) WriteWorkbook(ctx context.Context, wb *htmlgrid.WorkbookModel, path string) error {
	begin := time.Now()
	err := w.next.WriteWorkbook(ctx, wb, path)
	if err != nil {
		w.logger.Error("workbook write",
			"path", path,
			"error", err,
		)
		return err
	}

	w.logger.Info("workbook write",
		"path", path,
		"sheets", len(wb.Sheets),
		"duration", time.Since(begin),
	)
	return nil
}
