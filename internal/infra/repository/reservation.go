package repository

import (
	"context"
	"time"

	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/infra"
	"store-reservation/internal/infra/repository/converter"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/pgconv"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation_mock.go -package=repositorymock

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error)
	GetReservation(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Reservation, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Reservation, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	ReservationSlotTaken(ctx context.Context, db sqlc.DBTX, arg sqlc.ReservationSlotTakenParams) (bool, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	id, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return r.toDomain(row)
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return r.toDomain(row)
}

func (r *ReservationRepository) toDomain(row sqlc.Reservation) (*reservation.Reservation, error) {
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) SlotTaken(ctx context.Context, storeID int64, date time.Time, excludeID int64) (bool, error) {
	taken, err := r.queries.ReservationSlotTaken(ctx, r.db, sqlc.ReservationSlotTakenParams{
		StoreID:         storeID,
		ReservationDate: pgconv.TimeToPgtype(date),
		ID:              excludeID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation slot", err)
	}
	return taken, nil
}
