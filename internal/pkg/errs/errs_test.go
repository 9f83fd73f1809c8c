//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"parking-occupancy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	errSpotBusy := errs.Kind("spot busy", errs.ErrInvalidState)
	errWrongClass := errs.Kind("wrong class", errs.ErrInvalidState)

	t.Run("sentinel matches its kind", func(t *testing.T) {
		assert.True(t, errs.Is(errSpotBusy, errs.ErrInvalidState))
		assert.True(t, errors.Is(errSpotBusy, errs.ErrInvalidState))
		assert.False(t, errs.Is(errSpotBusy, errs.ErrConflict))
	})

	t.Run("sentinels of the same kind stay distinct", func(t *testing.T) {
		assert.False(t, errs.Is(errSpotBusy, errWrongClass))
		assert.False(t, errors.Is(errWrongClass, errSpotBusy))
	})

	t.Run("kind survives wrapping", func(t *testing.T) {
		wrapped := errs.Wrap(errSpotBusy, "entry failed")
		assert.True(t, errs.Is(wrapped, errSpotBusy))
		assert.True(t, errs.Is(wrapped, errs.ErrInvalidState))
		assert.Equal(t, "entry failed: spot busy", wrapped.Error())
	})

	t.Run("mark adds a second kind", func(t *testing.T) {
		marked := errs.Mark(errs.New("dial tcp: timeout"), errs.ErrStorageUnavailable)
		assert.True(t, errs.Is(marked, errs.ErrStorageUnavailable))
	})

	t.Run("nil stays nil on wrap", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
	})
}

func TestTranslate(t *testing.T) {
	errDuplicate := errs.Kind("label taken", errs.ErrConflict)
	cause := errors.New("duplicate key value violates unique constraint")

	err := errs.Translate(cause, errDuplicate, "create spot")

	assert.True(t, errs.Is(err, errDuplicate))
	assert.True(t, errs.Is(err, errs.ErrConflict))
	assert.Equal(t, "create spot: label taken", err.Error())
}

func TestMessage(t *testing.T) {
	errDuplicate := errs.Kind("label taken", errs.ErrConflict)

	assert.Equal(t, "label taken", errs.Message(errs.Translate(errors.New("23505"), errDuplicate, "create spot")))
	assert.Equal(t, "label taken", errs.Message(errs.Wrap(errDuplicate, "outer")))
	assert.Empty(t, errs.Message(errs.New("plain")))
}
