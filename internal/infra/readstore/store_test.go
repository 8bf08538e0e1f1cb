//go:build unit

package readstore

import (
	"context"
	"testing"

	"store-reservation/internal/domain/store"
	"store-reservation/internal/infra"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/pgconv"
	"store-reservation/internal/usecase/queries"
	"store-reservation/tests/common/builder"
	readstoremock "store-reservation/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStoreListQuery(t *testing.T) {
	tests := []struct {
		name      string
		orderBy   store.OrderBy
		wantOrder string
	}{
		{"by name", store.OrderByName, `ORDER BY "s"."name" ASC, "s"."id" ASC`},
		{"by rating", store.OrderByRating, `ORDER BY "s"."rating" DESC, "s"."name" ASC, "s"."id" ASC`},
		{"by review count", store.OrderByReview, `ORDER BY "review_count" DESC, "s"."name" ASC, "s"."id" ASC`},
	}

	rs := NewStoreReadStore(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := rs.listQuery(tt.orderBy, queries.NewPageRequest(2, 2)).ToSQL()
			require.NoError(t, err)

			assert.Contains(t, query, `LEFT JOIN "reviews" AS "r"`)
			assert.Contains(t, query, `GROUP BY "s"."id"`)
			assert.Contains(t, query, tt.wantOrder)
			assert.Contains(t, query, "LIMIT $1 OFFSET $2")
			assert.Len(t, args, 2)
		})
	}
}

func TestStoreReadStoreListEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockStoreReadQueries(ctrl)
	q.EXPECT().CountStores(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	items, total, err := NewStoreReadStore(q, nil).List(context.Background(), store.OrderByName, queries.NewPageRequest(0, 20))
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestStoreReadStoreFindDetails(t *testing.T) {
	b := builder.NewStoreBuilder()
	row := sqlc.GetStoreDetailsRow{
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

	t.Run("renders hours as HH:MM", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockStoreReadQueries(ctrl)
		q.EXPECT().GetStoreDetails(gomock.Any(), gomock.Any(), int64(5)).Return(row, nil)

		got, err := NewStoreReadStore(q, nil).FindDetails(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, b.BuildDetailsQuery(), got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockStoreReadQueries(ctrl)
		q.EXPECT().GetStoreDetails(gomock.Any(), gomock.Any(), int64(9)).Return(sqlc.GetStoreDetailsRow{}, pgx.ErrNoRows)

		_, err := NewStoreReadStore(q, nil).FindDetails(context.Background(), 9)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestStoreReadStoreSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockStoreReadQueries(ctrl)
	q.EXPECT().SearchStoresByNamePrefix(gomock.Any(), gomock.Any(), sqlc.SearchStoresByNamePrefixParams{Prefix: "Han", MaxResults: 20}).
		Return([]sqlc.SearchStoresByNamePrefixRow{{ID: 5, Name: "Hanok Table", Address: "12 Insadong-gil, Seoul", Rating: 4.5}}, nil)

	got, err := NewStoreReadStore(q, nil).SearchByNamePrefix(context.Background(), "Han", 20)
	require.NoError(t, err)
	assert.Equal(t, []*queries.StoreSearchItem{{ID: 5, Name: "Hanok Table", Address: "12 Insadong-gil, Seoul", Rating: 4.5}}, got)
}
