package htmlgrid

import "context"

// Source supplies raw document text for a named input. The name is used
// for reporting and default output naming. Read failures surface as EIO
// errors and fail only that input's conversion.
type Source interface {
	// Name returns the input's display name (typically a file path).
	Name() string

	// Read returns the raw document text.
	Read(ctx context.Context) (string, error)
}
