//go:build unit

package spot_test

import (
	"testing"

	"parking-occupancy/internal/domain/spot"
	"parking-occupancy/internal/domain/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibilityPolicy_Check(t *testing.T) {
	defaultPolicy := spot.NewCompatibilityPolicy([]vehicle.Class{vehicle.ClassCar, vehicle.ClassMotorcycle})
	carsOnly := spot.NewCompatibilityPolicy([]vehicle.Class{vehicle.ClassCar})

	testCases := []struct {
		name       string
		policy     spot.CompatibilityPolicy
		vehicle    vehicle.Class
		spotClass  spot.Class
		compatible bool
	}{
		{name: "car on car spot", policy: defaultPolicy, vehicle: vehicle.ClassCar, spotClass: spot.ClassCar, compatible: true},
		{name: "motorcycle on car spot", policy: defaultPolicy, vehicle: vehicle.ClassMotorcycle, spotClass: spot.ClassCar, compatible: true},
		{name: "motorcycle on motorcycle spot", policy: defaultPolicy, vehicle: vehicle.ClassMotorcycle, spotClass: spot.ClassMotorcycle, compatible: true},
		{name: "car on motorcycle spot", policy: defaultPolicy, vehicle: vehicle.ClassCar, spotClass: spot.ClassMotorcycle, compatible: false},
		{name: "car on accessible spot", policy: defaultPolicy, vehicle: vehicle.ClassCar, spotClass: spot.ClassAccessible, compatible: true},
		{name: "motorcycle on accessible spot", policy: defaultPolicy, vehicle: vehicle.ClassMotorcycle, spotClass: spot.ClassAccessible, compatible: true},
		{name: "motorcycle on accessible spot when restricted", policy: carsOnly, vehicle: vehicle.ClassMotorcycle, spotClass: spot.ClassAccessible, compatible: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.policy.Check(tc.vehicle, tc.spotClass)
			if tc.compatible {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, spot.ErrIncompatibleVehicle)
			}
		})
	}
}

func TestParseCompatibilityPolicy(t *testing.T) {
	t.Run("success: blank entries are skipped", func(t *testing.T) {
		p, err := spot.ParseCompatibilityPolicy([]string{"car", ""})
		require.NoError(t, err)
		assert.NoError(t, p.Check(vehicle.ClassCar, spot.ClassAccessible))
		assert.Error(t, p.Check(vehicle.ClassMotorcycle, spot.ClassAccessible))
	})

	t.Run("error: unknown class", func(t *testing.T) {
		_, err := spot.ParseCompatibilityPolicy([]string{"truck"})
		assert.ErrorIs(t, err, vehicle.ErrInvalidClass)
	})
}
