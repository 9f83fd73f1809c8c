package spot

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Spot struct {
	id        uuid.UUID
	label     string
	class     Class
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewSpot(label string, class Class, now time.Time) (*Spot, error) {
	l, err := normalizeLabel(label)
	if err != nil {
		return nil, err
	}
	if _, err := ParseClass(class.String()); err != nil {
		return nil, err
	}

	return &Spot{
		id:        uuid.New(),
		label:     l,
		class:     class,
		status:    StatusFree,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSpot(id uuid.UUID, label string, class Class, status Status, createdAt, updatedAt time.Time) *Spot {
	return &Spot{
		id:        id,
		label:     label,
		class:     class,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Spot) ID() uuid.UUID        { return s.id }
func (s *Spot) Label() string        { return s.label }
func (s *Spot) Class() Class         { return s.class }
func (s *Spot) Status() Status       { return s.status }
func (s *Spot) CreatedAt() time.Time { return s.createdAt }
func (s *Spot) UpdatedAt() time.Time { return s.updatedAt }
func (s *Spot) IsFree() bool         { return s.status == StatusFree }

// Occupy moves a free spot to occupied. Entry is the only caller.
func (s *Spot) Occupy(now time.Time) error {
	if s.status != StatusFree {
		return ErrSpotNotFree
	}
	s.status = StatusOccupied
	s.updatedAt = now
	return nil
}

// Release frees the spot when its session closes.
func (s *Spot) Release(now time.Time) {
	s.status = StatusFree
	s.updatedAt = now
}

// ChangeStatus applies a manual status change from spot management.
func (s *Spot) ChangeStatus(target Status, hasOpenSession bool, now time.Time) error {
	if target == s.status {
		return nil
	}
	if target == StatusOccupied {
		return ErrManualOccupy
	}
	if hasOpenSession || s.status == StatusOccupied {
		return ErrInvalidTransition
	}
	s.status = target
	s.updatedAt = now
	return nil
}

func (s *Spot) Rename(label string, now time.Time) error {
	l, err := normalizeLabel(label)
	if err != nil {
		return err
	}
	if l != s.label {
		s.label = l
		s.updatedAt = now
	}
	return nil
}

func (s *Spot) Reclassify(class Class, hasOpenSession bool, now time.Time) error {
	if _, err := ParseClass(class.String()); err != nil {
		return err
	}
	if class == s.class {
		return nil
	}
	if hasOpenSession || s.status == StatusOccupied {
		return ErrReclassifyOccupied
	}
	s.class = class
	s.updatedAt = now
	return nil
}

func (s *Spot) EnsureRemovable(hasOpenSession bool) error {
	if hasOpenSession || s.status == StatusOccupied {
		return ErrSpotInUse
	}
	return nil
}

func normalizeLabel(label string) (string, error) {
	l := strings.TrimSpace(label)
	if l == "" {
		return "", ErrEmptyLabel
	}
	if len(l) > MaxLabelLength {
		return "", ErrLabelTooLong
	}
	return l, nil
}
