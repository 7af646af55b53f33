package build_test

import (
	"strings"
	"testing"

	"github.com/jswierad/htmlgrid"
	"github.com/jswierad/htmlgrid/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeSheetName(t *testing.T) {
	t.Parallel()

	t.Run("strips disallowed characters", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ab", build.SanitizeSheetName(`a[]:*?/\b`))
	})

	t.Run("truncates to the name limit", func(t *testing.T) {
		t.Parallel()
		got := build.SanitizeSheetName(strings.Repeat("x", 40))
		assert.Equal(t, strings.Repeat("x", 31), got)
	})

	t.Run("falls back for empty results", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Sheet", build.SanitizeSheetName(""))
		assert.Equal(t, "Sheet", build.SanitizeSheetName("  "))
		assert.Equal(t, "Sheet", build.SanitizeSheetName("[/]"))
	})

	t.Run("does not split multibyte runes when truncating", func(t *testing.T) {
		t.Parallel()
		got := build.SanitizeSheetName(strings.Repeat("é", 40))
		assert.Equal(t, strings.Repeat("é", 31), got)
	})
}

func TestSheetNamer_Claim(t *testing.T) {
	t.Parallel()

	t.Run("suffixes colliding names in claim order", func(t *testing.T) {
		t.Parallel()

		n := build.NewSheetNamer()
		assert.Equal(t, "Data", n.Claim("Data"))
		assert.Equal(t, "Data_2", n.Claim("Data"))
		assert.Equal(t, "Data_3", n.Claim("Data"))
	})

	t.Run("sanitized names can collide too", func(t *testing.T) {
		t.Parallel()

		n := build.NewSheetNamer()
		assert.Equal(t, "ab", n.Claim("a/b"))
		assert.Equal(t, "ab_2", n.Claim("a:b"))
	})

	t.Run("keeps suffixed names within the limit", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 40)
		n := build.NewSheetNamer()
		first := n.Claim(long)
		second := n.Claim(long)
		assert.Len(t, first, 31)
		assert.Len(t, second, 31)
		assert.True(t, strings.HasSuffix(second, "_2"))
		assert.NotEqual(t, first, second)
	})
}

// Duplicate table indices indicate an extractor defect and must not
// silently share a sheet.
func TestBuildWorkbook_DuplicateTableIndex(t *testing.T) {
	t.Parallel()

	tables := []*htmlgrid.TableModel{
		{Index: 1, ColumnCount: 1, Rows: []htmlgrid.RowModel{
			{{Text: "x", RowSpan: 1, ColSpan: 1, OriginRow: 0, OriginCol: 0}},
		}},
		{Index: 1, ColumnCount: 1, Rows: []htmlgrid.RowModel{
			{{Text: "y", RowSpan: 1, ColSpan: 1, OriginRow: 0, OriginCol: 0}},
		}},
	}

	b := build.NewBuilder()
	_, err := b.BuildWorkbook(tables, nil)
	require.Error(t, err)
	assert.Equal(t, htmlgrid.EINTERNAL, htmlgrid.ErrorCode(err))
}
