package vehicle

import (
	"regexp"
	"strings"

	"parking-occupancy/internal/pkg/errs"
)

var ErrInvalidPlate = errs.Kind("invalid plate format, use ABC-1234 or ABC1D23", errs.ErrValidation)

// LLL-NNNN (legacy) or LLLNLNN (Mercosur).
var plateFormat = regexp.MustCompile(`^[A-Z]{3}-\d{4}$|^[A-Z]{3}\d[A-Z]\d{2}$`)

// Plate is always normalized; the zero value is not a valid plate.
type Plate struct {
	value string
}

func NormalizePlate(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ParsePlate normalizes raw and checks the accepted formats.
func ParsePlate(raw string) (Plate, error) {
	normalized := NormalizePlate(raw)
	if !plateFormat.MatchString(normalized) {
		return Plate{}, ErrInvalidPlate
	}
	return Plate{value: normalized}, nil
}

// ReconstructPlate restores a plate read back from storage.
func ReconstructPlate(stored string) Plate {
	return Plate{value: NormalizePlate(stored)}
}

func (p Plate) String() string { return p.value }

func (p Plate) IsZero() bool { return p.value == "" }
