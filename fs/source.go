// Package fs provides file-based input sources, batch input discovery,
// and default output naming.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/jswierad/htmlgrid"
)

// Ensure File implements htmlgrid.Source at compile time.
var _ htmlgrid.Source = (*File)(nil)

// File supplies raw document text read from a local file.
type File struct {
	path string
}

// NewFile creates a Source for the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Name returns the file path.
func (f *File) Name() string {
	return f.path
}

// Read returns the file's content. Failures surface as EIO errors.
func (f *File) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", htmlgrid.Errorf(htmlgrid.ECANCELED, "read %q: %v", f.path, err)
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", htmlgrid.Errorf(htmlgrid.EIO, "read %q: %v", f.path, err)
	}
	return string(data), nil
}

// OutputPath returns the default workbook destination for an input: the
// input's extension replaced with .xlsx, placed next to the input or in
// outDir when non-empty.
func OutputPath(input, outDir string) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".xlsx"
	if outDir == "" {
		return filepath.Join(filepath.Dir(input), name)
	}
	return filepath.Join(outDir, name)
}

// DiscoverInputs returns sources for the HTML files directly inside dir,
// in filename order.
func DiscoverInputs(dir string) ([]htmlgrid.Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, htmlgrid.Errorf(htmlgrid.EIO, "read directory %q: %v", dir, err)
	}

	var sources []htmlgrid.Source
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".html", ".htm":
			sources = append(sources, NewFile(filepath.Join(dir, e.Name())))
		}
	}
	return sources, nil
}
