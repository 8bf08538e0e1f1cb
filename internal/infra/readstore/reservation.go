package readstore

import (
	"context"
	"time"

	"store-reservation/internal/infra"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/pgconv"
	"store-reservation/internal/usecase/queries"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation_mock.go -package=readstoremock

type ReservationReadQueries interface {
	GetReservationView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReservationViewRow, error)
	CountReservationsByMember(ctx context.Context, db sqlc.DBTX, memberID string) (int64, error)
	ListReservationsByMember(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByMemberParams) ([]sqlc.ListReservationsByMemberRow, error)
	CountReservationsByStoreBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsByStoreBetweenParams) (int64, error)
	ListReservationsByStoreBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByStoreBetweenParams) ([]sqlc.ListReservationsByStoreBetweenRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation view", err)
	}
	return toReservationView(sqlc.ListReservationsByMemberRow(row)), nil
}

func (r *ReservationReadStore) ListByMember(ctx context.Context, memberID string, page queries.PageRequest) ([]*queries.ReservationView, int64, error) {
	total, err := r.queries.CountReservationsByMember(ctx, r.db, memberID)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count member reservations", err)
	}
	if total == 0 {
		return []*queries.ReservationView{}, 0, nil
	}

	rows, err := r.queries.ListReservationsByMember(ctx, r.db, sqlc.ListReservationsByMemberParams{
		MemberID: memberID,
		Limit:    page.Limit(),
		Offset:   page.Offset(),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list member reservations", err)
	}

	items := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		items[i] = toReservationView(row)
	}
	return items, total, nil
}

func (r *ReservationReadStore) ListByStoreBetween(ctx context.Context, storeID int64, from, to time.Time, page queries.PageRequest) ([]*queries.ReservationView, int64, error) {
	total, err := r.queries.CountReservationsByStoreBetween(ctx, r.db, sqlc.CountReservationsByStoreBetweenParams{
		StoreID:  storeID,
		FromDate: pgconv.TimeToPgtype(from),
		ToDate:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count store reservations", err)
	}
	if total == 0 {
		return []*queries.ReservationView{}, 0, nil
	}

	rows, err := r.queries.ListReservationsByStoreBetween(ctx, r.db, sqlc.ListReservationsByStoreBetweenParams{
		StoreID:    storeID,
		FromDate:   pgconv.TimeToPgtype(from),
		ToDate:     pgconv.TimeToPgtype(to),
		PageSize:   page.Limit(),
		PageOffset: page.Offset(),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list store reservations", err)
	}

	items := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		items[i] = toReservationView(sqlc.ListReservationsByMemberRow(row))
	}
	return items, total, nil
}

// The view rows of every reservation query share one column list.
func toReservationView(row sqlc.ListReservationsByMemberRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              row.ID,
		MemberID:        row.MemberID,
		MemberName:      row.MemberName,
		Phone:           row.MemberPhone,
		StoreID:         row.StoreID,
		StoreName:       row.StoreName,
		StoreOwnerID:    row.StoreOwnerID,
		Address:         row.StoreAddress,
		Contact:         row.StoreContact,
		ReservationDate: pgconv.TimeFromPgtype(row.ReservationDate),
		Status:          row.Status,
		Visited:         row.Visited,
	}
}
