package spot

import "parking-occupancy/internal/pkg/errs"

var (
	ErrSpotNotFound        = errs.Kind("spot not found", errs.ErrNotFound)
	ErrDuplicateLabel      = errs.Kind("spot label already exists", errs.ErrConflict)
	ErrSpotNotFree         = errs.Kind("spot is not free", errs.ErrInvalidState)
	ErrIncompatibleVehicle = errs.Kind("vehicle class cannot use this spot", errs.ErrInvalidState)
	ErrInvalidTransition   = errs.Kind("spot status change not allowed while a session is open", errs.ErrInvalidState)
	ErrManualOccupy        = errs.Kind("spots become occupied only through vehicle entry", errs.ErrInvalidState)
	ErrReclassifyOccupied  = errs.Kind("cannot change the class of an occupied spot", errs.ErrInvalidState)
	ErrSpotInUse           = errs.Kind("cannot delete a spot with an open session", errs.ErrInvalidState)
	ErrEmptyLabel          = errs.Kind("spot label is required", errs.ErrValidation)
	ErrLabelTooLong        = errs.Kind("spot label exceeds maximum length", errs.ErrValidation)
	ErrInvalidClass        = errs.Kind("invalid spot class", errs.ErrValidation)
	ErrInvalidStatus       = errs.Kind("invalid spot status", errs.ErrValidation)
)

const MaxLabelLength = 20

type Class string

const (
	ClassCar        Class = "car"
	ClassMotorcycle Class = "motorcycle"
	ClassAccessible Class = "accessible"
)

func (c Class) String() string { return string(c) }

func ParseClass(s string) (Class, error) {
	switch c := Class(s); c {
	case ClassCar, ClassMotorcycle, ClassAccessible:
		return c, nil
	default:
		return "", ErrInvalidClass
	}
}

type Status string

const (
	StatusFree        Status = "free"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string { return string(s) }

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusFree, StatusOccupied, StatusMaintenance:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}
