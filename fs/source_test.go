package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jswierad/htmlgrid"
	"github.com/jswierad/htmlgrid/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.html")
		require.NoError(t, os.WriteFile(path, []byte("<p>hi</p>"), 0644))

		src := fs.NewFile(path)
		assert.Equal(t, path, src.Name())

		text, err := src.Read(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "<p>hi</p>", text)
	})

	t.Run("missing file surfaces as io error", func(t *testing.T) {
		t.Parallel()

		src := fs.NewFile(filepath.Join(t.TempDir(), "missing.html"))
		_, err := src.Read(context.Background())
		require.Error(t, err)
		assert.Equal(t, htmlgrid.EIO, htmlgrid.ErrorCode(err))
	})

	t.Run("canceled context stops the read", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		src := fs.NewFile("irrelevant.html")
		_, err := src.Read(ctx)
		require.Error(t, err)
		assert.Equal(t, htmlgrid.ECANCELED, htmlgrid.ErrorCode(err))
	})
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	t.Run("replaces extension next to the input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, filepath.Join("docs", "report.xlsx"), fs.OutputPath(filepath.Join("docs", "report.html"), ""))
	})

	t.Run("places output in the given directory", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, filepath.Join("out", "report.xlsx"), fs.OutputPath(filepath.Join("docs", "report.htm"), "out"))
	})

	t.Run("handles inputs without extension", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "report.xlsx", fs.OutputPath("report", ""))
	})
}

func TestDiscoverInputs(t *testing.T) {
	t.Parallel()

	t.Run("finds html files in name order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for _, name := range []string{"b.html", "a.HTML", "c.htm", "notes.txt"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
		}
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.html"), 0755))

		sources, err := fs.DiscoverInputs(dir)
		require.NoError(t, err)

		var names []string
		for _, s := range sources {
			names = append(names, filepath.Base(s.Name()))
		}
		assert.Equal(t, []string{"a.HTML", "b.html", "c.htm"}, names)
	})

	t.Run("missing directory surfaces as io error", func(t *testing.T) {
		t.Parallel()

		_, err := fs.DiscoverInputs(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.Equal(t, htmlgrid.EIO, htmlgrid.ErrorCode(err))
	})
}
