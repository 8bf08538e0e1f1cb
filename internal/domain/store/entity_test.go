//go:build unit

package store_test

import (
	"testing"
	"time"

	"store-reservation/internal/domain/store"
	"store-reservation/internal/pkg/errs"
	"store-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.StoreBuilder)
		errIs  error
	}{
		{name: "valid"},
		{name: "blank name", mutate: func(b *builder.StoreBuilder) { b.Name = " " }, errIs: store.ErrBlankName},
		{name: "blank address", mutate: func(b *builder.StoreBuilder) { b.Address = "" }, errIs: store.ErrBlankAddress},
		{name: "blank contact", mutate: func(b *builder.StoreBuilder) { b.Contact = "" }, errIs: store.ErrBlankContact},
		{name: "blank owner", mutate: func(b *builder.StoreBuilder) { b.Owner = "" }, errIs: store.ErrBlankOwner},
		{name: "empty description is fine", mutate: func(b *builder.StoreBuilder) { b.Description = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewStoreBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			s, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrInvalidRequest), "want INVALID_REQUEST, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0.0, s.Rating(), "new stores start unrated")
			assert.Equal(t, "11:00", s.Open().String())
		})
	}
}

func TestStore_Ownership(t *testing.T) {
	s := builder.NewStoreBuilder().MustDomain()

	assert.True(t, s.IsOwnedBy("owner1"))
	assert.NoError(t, s.EnsureOwnedBy("owner1"))
	assert.ErrorIs(t, s.EnsureOwnedBy("owner2"), errs.ErrServiceOnlyForOwner)
}

func TestStore_Modify(t *testing.T) {
	now := time.Date(2030, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("replaces details", func(t *testing.T) {
		s := builder.NewStoreBuilder().MustDomain()
		d := builder.NewStoreBuilder().With(func(b *builder.StoreBuilder) { b.Name = "  Hanok Table 2 " }).Details()
		require.NoError(t, s.Modify(d, now))
		assert.Equal(t, "Hanok Table 2", s.Name())
		assert.Equal(t, now, s.UpdatedAt())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		s := builder.NewStoreBuilder().MustDomain()
		d := builder.NewStoreBuilder().With(func(b *builder.StoreBuilder) { b.Name = "" }).Details()
		require.ErrorIs(t, s.Modify(d, now), store.ErrBlankName)
		assert.Equal(t, "Hanok Table", s.Name())
	})
}

func TestStore_Rerate(t *testing.T) {
	s := builder.NewStoreBuilder().MustDomain()
	s.Rerate([]float64{4, 5}, time.Now())
	assert.Equal(t, 4.5, s.Rating())

	s.Rerate(nil, time.Now())
	assert.Equal(t, 0.0, s.Rating())
}

func TestStore_EnsureDeletable(t *testing.T) {
	s := builder.NewStoreBuilder().MustDomain()
	assert.NoError(t, s.EnsureDeletable(false))
	assert.ErrorIs(t, s.EnsureDeletable(true), errs.ErrStoreHasReservation)
}
