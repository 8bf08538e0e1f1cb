package repository

import (
	"context"

	"store-reservation/internal/domain/store"
	"store-reservation/internal/infra"
	"store-reservation/internal/infra/repository/converter"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/pgconv"
)

//go:generate mockgen -source=store.go -destination=../../../tests/mock/repository/store_mock.go -package=repositorymock

type StoreWriteQueries interface {
	CreateStore(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateStoreParams) (int64, error)
	GetStore(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Store, error)
	GetStoreForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Store, error)
	UpdateStore(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateStoreParams) (int64, error)
	UpdateStoreRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateStoreRatingParams) (int64, error)
	DeleteStore(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	StoreAddressContactTaken(ctx context.Context, db sqlc.DBTX, arg sqlc.StoreAddressContactTakenParams) (bool, error)
	StoreHasReservations(ctx context.Context, db sqlc.DBTX, storeID int64) (bool, error)
}

type StoreRepository struct {
	queries StoreWriteQueries
	db      sqlc.DBTX
}

func NewStoreRepository(queries StoreWriteQueries, db sqlc.DBTX) *StoreRepository {
	return &StoreRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StoreRepository) Create(ctx context.Context, s *store.Store) (int64, error) {
	id, err := r.queries.CreateStore(ctx, r.db, converter.StoreToCreateParams(s))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create store", err)
	}
	return id, nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id int64) (*store.Store, error) {
	row, err := r.queries.GetStore(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find store", err)
	}
	return r.toDomain(row)
}

func (r *StoreRepository) FindByIDForUpdate(ctx context.Context, id int64) (*store.Store, error) {
	row, err := r.queries.GetStoreForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock store", err)
	}
	return r.toDomain(row)
}

func (r *StoreRepository) toDomain(row sqlc.Store) (*store.Store, error) {
	s, err := converter.StoreFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt store row", err, infra.KindDBFailure)
	}
	return s, nil
}

func (r *StoreRepository) Update(ctx context.Context, s *store.Store) error {
	n, err := r.queries.UpdateStore(ctx, r.db, converter.StoreToUpdateParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update store", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("store not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *StoreRepository) UpdateRating(ctx context.Context, s *store.Store) error {
	params := sqlc.UpdateStoreRatingParams{
		ID:        s.ID(),
		Rating:    s.Rating(),
		UpdatedAt: pgconv.TimeToPgtype(s.UpdatedAt()),
	}
	n, err := r.queries.UpdateStoreRating(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update store rating", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("store not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *StoreRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteStore(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete store", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("store not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *StoreRepository) AddressContactTaken(ctx context.Context, address, contact string, excludeID int64) (bool, error) {
	taken, err := r.queries.StoreAddressContactTaken(ctx, r.db, sqlc.StoreAddressContactTakenParams{
		Address: address,
		Contact: contact,
		ID:      excludeID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check store address", err)
	}
	return taken, nil
}

func (r *StoreRepository) HasReservations(ctx context.Context, id int64) (bool, error) {
	has, err := r.queries.StoreHasReservations(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check store reservations", err)
	}
	return has, nil
}
