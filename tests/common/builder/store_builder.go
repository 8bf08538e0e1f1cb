//go:build unit || e2e

package builder

import (
	"time"

	"store-reservation/internal/domain/store"
	reqdto "store-reservation/internal/handler/dto/request"
	"store-reservation/internal/usecase/queries"
)

type StoreBuilder struct {
	ID          int64
	Owner       string
	Name        string
	Address     string
	Description string
	Contact     string
	Open        string
	Close       string
	Rating      float64
	CreatedAt   time.Time
}

func NewStoreBuilder() *StoreBuilder {
	return &StoreBuilder{
		ID:          5,
		Owner:       "owner1",
		Name:        "Hanok Table",
		Address:     "12 Insadong-gil, Seoul",
		Description: "Korean home cooking",
		Contact:     "02-123-4567",
		Open:        "11:00",
		Close:       "22:00",
		CreatedAt:   time.Date(2029, 12, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *StoreBuilder) With(mutate func(*StoreBuilder)) *StoreBuilder {
	mutate(b)
	return b
}

func (b *StoreBuilder) Details() store.Details {
	open, _ := store.ParseTimeOfDay(b.Open)
	closeAt, _ := store.ParseTimeOfDay(b.Close)
	return store.Details{
		Name:        b.Name,
		Address:     b.Address,
		Description: b.Description,
		Contact:     b.Contact,
		Open:        open,
		Close:       closeAt,
	}
}

func (b *StoreBuilder) BuildDomain() (*store.Store, error) {
	return store.NewStore(b.Owner, b.Details(), b.CreatedAt)
}

// MustDomain rebuilds a persisted store, id included.
func (b *StoreBuilder) MustDomain() *store.Store {
	return store.ReconstructStore(b.ID, b.Owner, b.Details(), b.Rating, b.CreatedAt, b.CreatedAt)
}

func (b *StoreBuilder) BuildRequestDTO() reqdto.StoreRequest {
	return reqdto.StoreRequest{
		Name:        b.Name,
		Address:     b.Address,
		Description: b.Description,
		Contact:     b.Contact,
		Open:        b.Open,
		Close:       b.Close,
	}
}

func (b *StoreBuilder) BuildDetailsQuery() *queries.StoreDetails {
	return &queries.StoreDetails{
		ID:          b.ID,
		OwnerID:     b.Owner,
		Name:        b.Name,
		Address:     b.Address,
		Description: b.Description,
		Contact:     b.Contact,
		Open:        b.Open,
		Close:       b.Close,
		Rating:      b.Rating,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}
