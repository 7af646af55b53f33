package htmlgrid

import (
	"context"
	"time"
)

// Status is the outcome of a single file conversion.
type Status string

// Conversion outcomes.
const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// ConversionReport describes the outcome of converting one input. It
// outlives the conversion and is aggregated into a batch Summary.
type ConversionReport struct {
	ID string `json:"id"`

	// Input is the name of the converted source.
	Input string `json:"input"`

	// OutputPath is where the workbook was written. Empty on failure.
	OutputPath string `json:"outputPath"`

	Status Status `json:"status"`

	TableCount         int `json:"tableCount"`
	ContentRecordCount int `json:"contentRecordCount"`

	// Warnings lists recoverable structural problems encountered while
	// converting. Present on successful conversions too.
	Warnings []string `json:"warnings,omitempty"`

	// ErrorCode and Error describe the failure. Empty on success.
	ErrorCode string `json:"errorCode,omitempty"`
	Error     string `json:"error,omitempty"`

	// ContentHash is a hash of the raw input text, used by the history
	// store to detect re-conversions of identical input.
	ContentHash string `json:"contentHash"`

	ConvertedAt time.Time `json:"convertedAt"`
}

// Validate returns an error if the report contains invalid fields.
func (r *ConversionReport) Validate() error {
	if r.Input == "" {
		return Errorf(EINVALID, "report input name required")
	}
	if r.Status != StatusSuccess && r.Status != StatusFailed {
		return Errorf(EINVALID, "report status required")
	}
	return nil
}

// Summary aggregates a batch of per-file reports, in the same order as
// the input sequence.
type Summary struct {
	ID        string              `json:"id"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Reports   []*ConversionReport `json:"reports"`
}

// ConversionFilter represents a filter for FindConversions.
type ConversionFilter struct {
	ID     *string `json:"id"`
	Input  *string `json:"input"`
	Status *Status `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ConversionService persists conversion reports as a queryable history.
type ConversionService interface {
	// RecordConversion stores a report, assigning its ID and timestamp.
	RecordConversion(ctx context.Context, report *ConversionReport) error

	// FindConversionByID retrieves a report by ID.
	// Returns ENOTFOUND if the report does not exist.
	FindConversionByID(ctx context.Context, id string) (*ConversionReport, error)

	// FindConversions retrieves reports matching the filter, most
	// recent first.
	FindConversions(ctx context.Context, filter ConversionFilter) ([]*ConversionReport, error)

	// DeleteConversion permanently removes a report.
	// Returns ENOTFOUND if the report does not exist.
	DeleteConversion(ctx context.Context, id string) error
}
