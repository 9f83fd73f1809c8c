package spot

import "parking-occupancy/internal/domain/vehicle"

// CompatibilityPolicy decides which vehicle classes may take which spot classes.
// Cars never fit motorcycle spots. Accessible spots accept the configured classes.
type CompatibilityPolicy struct {
	accessible map[vehicle.Class]bool
}

func NewCompatibilityPolicy(accessibleClasses []vehicle.Class) CompatibilityPolicy {
	allowed := make(map[vehicle.Class]bool, len(accessibleClasses))
	for _, c := range accessibleClasses {
		allowed[c] = true
	}
	return CompatibilityPolicy{accessible: allowed}
}

// ParseCompatibilityPolicy builds the policy from configuration values.
func ParseCompatibilityPolicy(accessibleClasses []string) (CompatibilityPolicy, error) {
	classes := make([]vehicle.Class, 0, len(accessibleClasses))
	for _, raw := range accessibleClasses {
		if raw == "" {
			continue
		}
		c, err := vehicle.ParseClass(raw)
		if err != nil {
			return CompatibilityPolicy{}, err
		}
		classes = append(classes, c)
	}
	return NewCompatibilityPolicy(classes), nil
}

func (p CompatibilityPolicy) Check(v vehicle.Class, s Class) error {
	switch s {
	case ClassMotorcycle:
		if v == vehicle.ClassCar {
			return ErrIncompatibleVehicle
		}
	case ClassAccessible:
		if !p.accessible[v] {
			return ErrIncompatibleVehicle
		}
	}
	return nil
}
