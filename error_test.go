package htmlgrid_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jswierad/htmlgrid"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error has no code", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", htmlgrid.ErrorCode(nil))
	})

	t.Run("application error returns its code", func(t *testing.T) {
		t.Parallel()
		err := htmlgrid.Errorf(htmlgrid.EDECODE, "bad input")
		assert.Equal(t, htmlgrid.EDECODE, htmlgrid.ErrorCode(err))
	})

	t.Run("wrapped application error still returns its code", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", htmlgrid.Errorf(htmlgrid.EIO, "io failure"))
		assert.Equal(t, htmlgrid.EIO, htmlgrid.ErrorCode(err))
	})

	t.Run("unknown error maps to internal", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, htmlgrid.EINTERNAL, htmlgrid.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("nil error has no message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", htmlgrid.ErrorMessage(nil))
	})

	t.Run("application error returns its message", func(t *testing.T) {
		t.Parallel()
		err := htmlgrid.Errorf(htmlgrid.EINVALID, "input %q rejected", "x")
		assert.Equal(t, `input "x" rejected`, htmlgrid.ErrorMessage(err))
	})

	t.Run("unknown error hides its message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error", htmlgrid.ErrorMessage(errors.New("boom")))
	})
}
