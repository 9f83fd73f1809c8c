//go:build unit

package vehicle_test

import (
	"testing"

	"parking-occupancy/internal/domain/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlate(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
		errIs    error
	}{
		{name: "legacy format", raw: "ABC-1234", expected: "ABC-1234"},
		{name: "mercosur format", raw: "ABC1D23", expected: "ABC1D23"},
		{name: "lowercase is normalized", raw: "abc-1234", expected: "ABC-1234"},
		{name: "surrounding whitespace is trimmed", raw: "  abc1d23\t", expected: "ABC1D23"},
		{name: "missing hyphen", raw: "ABC1234", errIs: vehicle.ErrInvalidPlate},
		{name: "too short", raw: "AB-123", errIs: vehicle.ErrInvalidPlate},
		{name: "inner whitespace", raw: "ABC 1234", errIs: vehicle.ErrInvalidPlate},
		{name: "empty", raw: "   ", errIs: vehicle.ErrInvalidPlate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plate, err := vehicle.ParsePlate(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, plate.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, plate.String())
		})
	}
}

func TestNormalizePlate_Idempotent(t *testing.T) {
	inputs := []string{"abc-1234", " ABC1d23 ", "XyZ-0000\n", "", "already-NORMAL"}

	for _, in := range inputs {
		once := vehicle.NormalizePlate(in)
		assert.Equal(t, once, vehicle.NormalizePlate(once), "normalize must be idempotent for %q", in)
	}
}

func TestPlate_SameVehicleRegardlessOfInput(t *testing.T) {
	entry, err := vehicle.ParsePlate("abc-1234")
	require.NoError(t, err)
	exit, err := vehicle.ParsePlate("  ABC-1234 ")
	require.NoError(t, err)

	assert.Equal(t, entry, exit)
}

func TestParseClass(t *testing.T) {
	for _, c := range vehicle.Classes() {
		parsed, err := vehicle.ParseClass(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := vehicle.ParseClass("accessible")
	assert.ErrorIs(t, err, vehicle.ErrInvalidClass)
}
