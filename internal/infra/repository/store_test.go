//go:build unit

package repository

import (
	"context"
	"testing"

	"store-reservation/internal/infra"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/pgconv"
	"store-reservation/tests/common/builder"
	repositorymock "store-reservation/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func storeRow(b *builder.StoreBuilder) sqlc.Store {
	return sqlc.Store{
		ID:          b.ID,
		OwnerID:     b.Owner,
		Name:        b.Name,
		Address:     b.Address,
		Description: b.Description,
		Contact:     b.Contact,
		OpenTime:    pgconv.ClockToPgtype(11 * 60),
		CloseTime:   pgconv.ClockToPgtype(22 * 60),
		Rating:      b.Rating,
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func TestStoreRepositoryFindByID(t *testing.T) {
	b := builder.NewStoreBuilder().With(func(b *builder.StoreBuilder) { b.Rating = 4.5 })

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockStoreWriteQueries(ctrl)
		q.EXPECT().GetStore(gomock.Any(), gomock.Any(), int64(5)).Return(storeRow(b), nil)

		got, err := NewStoreRepository(q, nil).FindByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, b.MustDomain(), got)
	})

	t.Run("null opening time is a corrupt row", func(t *testing.T) {
		row := storeRow(b)
		row.OpenTime = pgtype.Time{}
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockStoreWriteQueries(ctrl)
		q.EXPECT().GetStore(gomock.Any(), gomock.Any(), int64(5)).Return(row, nil)

		_, err := NewStoreRepository(q, nil).FindByID(context.Background(), 5)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestStoreRepositoryUpdateRating(t *testing.T) {
	st := builder.NewStoreBuilder().MustDomain()
	st.Rerate([]float64{4, 5}, builder.Scheduled)

	tests := []struct {
		name     string
		affected int64
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "store gone", affected: 0, wantKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockStoreWriteQueries(ctrl)
			q.EXPECT().UpdateStoreRating(gomock.Any(), gomock.Any(), sqlc.UpdateStoreRatingParams{
				ID:        5,
				Rating:    4.5,
				UpdatedAt: pgconv.TimeToPgtype(builder.Scheduled),
			}).Return(tt.affected, nil)

			err := NewStoreRepository(q, nil).UpdateRating(context.Background(), st)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}
}

func TestStoreRepositoryAddressContactTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockStoreWriteQueries(ctrl)
	q.EXPECT().StoreAddressContactTaken(gomock.Any(), gomock.Any(), sqlc.StoreAddressContactTakenParams{
		Address: "12 Insadong-gil, Seoul",
		Contact: "02-123-4567",
		ID:      5,
	}).Return(false, assert.AnError)

	_, err := NewStoreRepository(q, nil).AddressContactTaken(context.Background(), "12 Insadong-gil, Seoul", "02-123-4567", 5)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
