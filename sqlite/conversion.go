package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jswierad/htmlgrid"
)

// Compile-time interface verification.
var _ htmlgrid.ConversionService = (*ConversionService)(nil)

// ConversionService implements htmlgrid.ConversionService using SQLite.
type ConversionService struct {
	db *DB
}

// NewConversionService creates a new ConversionService.
func NewConversionService(db *DB) *ConversionService {
	return &ConversionService{db: db}
}

// RecordConversion stores a report, assigning its ID and, when unset,
// its timestamp.
func (s *ConversionService) RecordConversion(ctx context.Context, report *htmlgrid.ConversionReport) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.ID = uuid.New().String()
	if report.ConvertedAt.IsZero() {
		report.ConvertedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, input, output_path, status, table_count, content_record_count,
			warnings, error_code, error, content_hash, converted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.Input, report.OutputPath, string(report.Status),
		report.TableCount, report.ContentRecordCount,
		strings.Join(report.Warnings, "\n"), report.ErrorCode, report.Error,
		report.ContentHash, report.ConvertedAt.Format(time.RFC3339))

	return err
}

// FindConversionByID retrieves a report by ID.
func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*htmlgrid.ConversionReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, input, output_path, status, table_count, content_record_count,
			warnings, error_code, error, content_hash, converted_at
		FROM conversions
		WHERE id = ?
	`, id)

	report, err := scanConversion(row.Scan)
	if err == sql.ErrNoRows {
		return nil, htmlgrid.Errorf(htmlgrid.ENOTFOUND, "conversion not found")
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// FindConversions retrieves reports matching the filter, most recent
// first.
func (s *ConversionService) FindConversions(ctx context.Context, filter htmlgrid.ConversionFilter) ([]*htmlgrid.ConversionReport, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, input, output_path, status, table_count, content_record_count,
		warnings, error_code, error, content_hash, converted_at
		FROM conversions WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Input != nil {
		query.WriteString(" AND input = ?")
		args = append(args, *filter.Input)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY converted_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*htmlgrid.ConversionReport
	for rows.Next() {
		report, err := scanConversion(rows.Scan)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// DeleteConversion permanently removes a report.
func (s *ConversionService) DeleteConversion(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM conversions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return htmlgrid.Errorf(htmlgrid.ENOTFOUND, "conversion not found")
	}
	return nil
}

// scanConversion reads one conversions row via the given scan function.
func scanConversion(scan func(dest ...any) error) (*htmlgrid.ConversionReport, error) {
	var report htmlgrid.ConversionReport
	var status, warnings, convertedAt string

	if err := scan(&report.ID, &report.Input, &report.OutputPath, &status,
		&report.TableCount, &report.ContentRecordCount,
		&warnings, &report.ErrorCode, &report.Error,
		&report.ContentHash, &convertedAt); err != nil {
		return nil, err
	}

	report.Status = htmlgrid.Status(status)
	if warnings != "" {
		report.Warnings = strings.Split(warnings, "\n")
	}

	var err error
	report.ConvertedAt, err = parseRFC3339(convertedAt, "converted_at")
	if err != nil {
		return nil, err
	}
	return &report, nil
}
