// Package convert drives HTML-to-workbook conversions: the sequential
// per-file pipeline (parse, extract, build, write) and a batch mode that
// runs it across a bounded worker pool. A failure in one input is
// captured in that input's report and never aborts the rest of the batch.
package convert

import (
	"context"
	"encoding/hex"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/jswierad/htmlgrid"
	"golang.org/x/sync/errgroup"
)

// Converter wires the pipeline stages together. All fields except
// Reports and Concurrency are required.
type Converter struct {
	Parser  htmlgrid.TreeParser
	Tables  htmlgrid.TableExtractor
	Content htmlgrid.ContentExtractor
	Builder htmlgrid.WorkbookBuilder
	Writer  htmlgrid.SpreadsheetWriter

	// OutputPath maps an input name to its workbook destination.
	OutputPath func(input string) string

	// Reports, when set, records every conversion in the history store.
	// Store failures degrade to a report warning.
	Reports htmlgrid.ConversionService

	// Concurrency bounds the batch worker pool. Defaults to 4.
	Concurrency int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Input     string
	Error     error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// ConvertFile runs the full pipeline for one source and returns its
// report. Errors are captured on the report, never returned: decode and
// I/O failures are per-file outcomes, and structural problems degrade to
// warnings.
func (c *Converter) ConvertFile(ctx context.Context, src htmlgrid.Source, outputPath string) *htmlgrid.ConversionReport {
	report := c.convertOne(ctx, src, outputPath)
	c.record(ctx, report)
	return report
}

func (c *Converter) convertOne(ctx context.Context, src htmlgrid.Source, outputPath string) *htmlgrid.ConversionReport {
	report := &htmlgrid.ConversionReport{
		Input:       src.Name(),
		Status:      htmlgrid.StatusFailed,
		ConvertedAt: time.Now().UTC(),
	}

	text, err := src.Read(ctx)
	if err != nil {
		return failed(report, err)
	}
	report.ContentHash = hashContent(text)

	parsed, err := c.Parser.Parse(text)
	if err != nil {
		return failed(report, err)
	}
	report.Warnings = append(report.Warnings, parsed.Warnings...)

	tables, err := c.Tables.ExtractTables(parsed.Root)
	if err != nil {
		return failed(report, err)
	}
	report.Warnings = append(report.Warnings, tables.Warnings...)

	content, err := c.Content.ExtractContent(parsed.Root)
	if err != nil {
		return failed(report, err)
	}
	report.Warnings = append(report.Warnings, content.Warnings...)

	wb, err := c.Builder.BuildWorkbook(tables.Tables, content.Records)
	if err != nil {
		return failed(report, err)
	}

	if err := c.Writer.WriteWorkbook(ctx, wb, outputPath); err != nil {
		return failed(report, err)
	}

	report.Status = htmlgrid.StatusSuccess
	report.OutputPath = outputPath
	report.TableCount = len(tables.Tables)
	report.ContentRecordCount = len(content.Records)

	return report
}

// Run converts every source independently across a bounded worker pool
// and returns per-file reports in input order. After cancellation is
// observed no new input is dispatched; in-flight conversions run to
// completion. The returned error is non-nil only when a conversion hit
// an internal invariant violation, which indicates a bug and must not be
// hidden inside the summary.
func (c *Converter) Run(ctx context.Context, sources []htmlgrid.Source, progress ProgressFunc) (*htmlgrid.Summary, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(sources)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	type indexed struct {
		position int
		report   *htmlgrid.ConversionReport
	}
	resultCh := make(chan indexed, total)

	var g errgroup.Group
	g.SetLimit(concurrency)

	go func() {
		for i, src := range sources {
			if ctx.Err() != nil {
				break
			}
			i, src := i, src
			g.Go(func() error {
				report := c.ConvertFile(ctx, src, c.OutputPath(src.Name()))
				resultCh <- indexed{position: i, report: report}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	reports := make([]*htmlgrid.ConversionReport, total)
	var completed atomic.Int64
	for r := range resultCh {
		completed.Add(1)
		reports[r.position] = r.report

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			Input:     r.report.Input,
		}
		if r.report.Status == htmlgrid.StatusFailed {
			event.Type = ProgressFailed
			event.Error = htmlgrid.Errorf(r.report.ErrorCode, "%s", r.report.Error)
		} else {
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	// Inputs never dispatched because of cancellation still get a
	// report so the summary covers the whole input sequence.
	for i, r := range reports {
		if r == nil {
			reports[i] = failed(&htmlgrid.ConversionReport{
				Input:       sources[i].Name(),
				ConvertedAt: time.Now().UTC(),
			}, htmlgrid.Errorf(htmlgrid.ECANCELED, "conversion canceled before start"))
		}
	}

	summary := &htmlgrid.Summary{
		ID:      uuid.New().String(),
		Reports: reports,
	}
	var invariant error
	for _, r := range reports {
		if r.Status == htmlgrid.StatusSuccess {
			summary.Succeeded++
			continue
		}
		summary.Failed++
		if r.ErrorCode == htmlgrid.EINTERNAL && invariant == nil {
			invariant = htmlgrid.Errorf(htmlgrid.EINTERNAL, "%s: %s", r.Input, r.Error)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return summary, invariant
}

// record stores the report in the history service, degrading failures to
// a report warning.
func (c *Converter) record(ctx context.Context, report *htmlgrid.ConversionReport) {
	if c.Reports == nil {
		return
	}
	if err := c.Reports.RecordConversion(ctx, report); err != nil {
		report.Warnings = append(report.Warnings, "history: "+htmlgrid.ErrorMessage(err))
	}
}

func failed(report *htmlgrid.ConversionReport, err error) *htmlgrid.ConversionReport {
	report.Status = htmlgrid.StatusFailed
	report.ErrorCode = htmlgrid.ErrorCode(err)
	report.Error = htmlgrid.ErrorMessage(err)
	return report
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}
