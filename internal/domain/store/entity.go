package store

import (
	"strings"
	"time"

	"store-reservation/internal/pkg/errs"
)

var (
	ErrBlankName    = errs.Mark(errs.New("store name is required"), errs.ErrInvalidRequest)
	ErrBlankAddress = errs.Mark(errs.New("store address is required"), errs.ErrInvalidRequest)
	ErrBlankContact = errs.Mark(errs.New("store contact is required"), errs.ErrInvalidRequest)
	ErrBlankOwner   = errs.Mark(errs.New("store owner is required"), errs.ErrInvalidRequest)
)

const MaxDescriptionLength = 2000

type Details struct {
	Name        string
	Address     string
	Description string
	Contact     string
	Open        TimeOfDay
	Close       TimeOfDay
}

func (d Details) normalize() (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	d.Contact = strings.TrimSpace(d.Contact)
	d.Description = strings.TrimSpace(d.Description)

	switch {
	case d.Name == "":
		return Details{}, ErrBlankName
	case d.Address == "":
		return Details{}, ErrBlankAddress
	case d.Contact == "":
		return Details{}, ErrBlankContact
	case len(d.Description) > MaxDescriptionLength:
		return Details{}, errs.Mark(errs.New("store description is too long"), errs.ErrInvalidRequest)
	}
	return d, nil
}

type Store struct {
	id        int64
	owner     string
	details   Details
	rating    float64
	createdAt time.Time
	updatedAt time.Time
}

func NewStore(owner string, details Details, now time.Time) (*Store, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrBlankOwner
	}
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Store{
		owner:     owner,
		details:   d,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructStore(id int64, owner string, details Details, rating float64, createdAt, updatedAt time.Time) *Store {
	return &Store{
		id:        id,
		owner:     owner,
		details:   details,
		rating:    rating,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Store) ID() int64            { return s.id }
func (s *Store) Owner() string        { return s.owner }
func (s *Store) Details() Details     { return s.details }
func (s *Store) Name() string         { return s.details.Name }
func (s *Store) Address() string      { return s.details.Address }
func (s *Store) Description() string  { return s.details.Description }
func (s *Store) Contact() string      { return s.details.Contact }
func (s *Store) Open() TimeOfDay      { return s.details.Open }
func (s *Store) Close() TimeOfDay     { return s.details.Close }
func (s *Store) Rating() float64      { return s.rating }
func (s *Store) CreatedAt() time.Time { return s.createdAt }
func (s *Store) UpdatedAt() time.Time { return s.updatedAt }

func (s *Store) IsOwnedBy(userID string) bool {
	return s.owner == userID
}

func (s *Store) EnsureOwnedBy(userID string) error {
	if !s.IsOwnedBy(userID) {
		return errs.ErrServiceOnlyForOwner
	}
	return nil
}

func (s *Store) Modify(details Details, now time.Time) error {
	d, err := details.normalize()
	if err != nil {
		return err
	}
	s.details = d
	s.updatedAt = now
	return nil
}

// Rerate replaces the aggregate rating with the average of ratings.
func (s *Store) Rerate(ratings []float64, now time.Time) {
	s.rating = AverageRating(ratings)
	s.updatedAt = now
}

func (s *Store) EnsureDeletable(hasReservations bool) error {
	if hasReservations {
		return errs.ErrStoreHasReservation
	}
	return nil
}
