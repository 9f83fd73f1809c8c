package vehicle

import "parking-occupancy/internal/pkg/errs"

var ErrInvalidClass = errs.Kind("invalid vehicle class", errs.ErrValidation)

type Class string

const (
	ClassCar        Class = "car"
	ClassMotorcycle Class = "motorcycle"
)

func (c Class) String() string {
	return string(c)
}

func (c Class) IsValid() bool {
	switch c {
	case ClassCar, ClassMotorcycle:
		return true
	default:
		return false
	}
}

func ParseClass(s string) (Class, error) {
	c := Class(s)
	if !c.IsValid() {
		return "", ErrInvalidClass
	}
	return c, nil
}

func Classes() []Class {
	return []Class{ClassCar, ClassMotorcycle}
}
