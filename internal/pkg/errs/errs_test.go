//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"blueprint-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("operation rejected")

	t.Run("mark is visible to errors.Is", func(t *testing.T) {
		cause := errors.New("constraint violated")
		err := errs.Mark(cause, sentinel)
		assert.True(t, errors.Is(err, sentinel))
	})

	t.Run("cause stays in the chain", func(t *testing.T) {
		cause := errors.New("constraint violated")
		err := errs.Mark(cause, sentinel)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("nil cause yields the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errors.New("inner"), sentinel), "outer")
		assert.True(t, errors.Is(err, sentinel))
	})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
}
