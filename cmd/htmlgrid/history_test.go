package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jswierad/htmlgrid"
	main "github.com/jswierad/htmlgrid/cmd/htmlgrid"
	"github.com/jswierad/htmlgrid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists conversions with ID, time, status, and input", func(t *testing.T) {
		t.Parallel()

		conversions := &mock.ConversionService{
			FindConversionsFn: func(_ context.Context, filter htmlgrid.ConversionFilter) ([]*htmlgrid.ConversionReport, error) {
				assert.Equal(t, 20, filter.Limit)
				return []*htmlgrid.ConversionReport{
					{
						ID:          "conv-123",
						Input:       "report.html",
						Status:      htmlgrid.StatusSuccess,
						ConvertedAt: time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC),
					},
					{
						ID:          "conv-456",
						Input:       "broken.html",
						Status:      htmlgrid.StatusFailed,
						ConvertedAt: time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Conversions: conversions,
		}

		cmd := &main.HistoryCmd{Limit: 20}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "conv-123")
		assert.Contains(t, output, "report.html")
		assert.Contains(t, output, "conv-456")
		assert.Contains(t, output, "failed")
		assert.Contains(t, output, "2026-08-30 09:30")
	})

	t.Run("passes filters through", func(t *testing.T) {
		t.Parallel()

		conversions := &mock.ConversionService{
			FindConversionsFn: func(_ context.Context, filter htmlgrid.ConversionFilter) ([]*htmlgrid.ConversionReport, error) {
				require.NotNil(t, filter.Input)
				assert.Equal(t, "a.html", *filter.Input)
				require.NotNil(t, filter.Status)
				assert.Equal(t, htmlgrid.StatusFailed, *filter.Status)
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Conversions: conversions,
		}

		cmd := &main.HistoryCmd{Input: "a.html", Status: "failed", Limit: 5}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No conversions found")
	})
}
