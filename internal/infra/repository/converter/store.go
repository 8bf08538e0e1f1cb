package converter

import (
	"store-reservation/internal/domain/store"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func StoreToCreateParams(s *store.Store) sqlc.CreateStoreParams {
	return sqlc.CreateStoreParams{
		OwnerID:     s.Owner(),
		Name:        s.Name(),
		Address:     s.Address(),
		Description: s.Description(),
		Contact:     s.Contact(),
		OpenTime:    pgconv.ClockToPgtype(s.Open().Minutes()),
		CloseTime:   pgconv.ClockToPgtype(s.Close().Minutes()),
		Rating:      s.Rating(),
		CreatedAt:   pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func StoreToUpdateParams(s *store.Store) sqlc.UpdateStoreParams {
	return sqlc.UpdateStoreParams{
		ID:          s.ID(),
		Name:        s.Name(),
		Address:     s.Address(),
		Description: s.Description(),
		Contact:     s.Contact(),
		OpenTime:    pgconv.ClockToPgtype(s.Open().Minutes()),
		CloseTime:   pgconv.ClockToPgtype(s.Close().Minutes()),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func StoreFromRow(row sqlc.Store) (*store.Store, error) {
	open, err := TimeOfDayFromPgtype(row.OpenTime)
	if err != nil {
		return nil, err
	}
	closeAt, err := TimeOfDayFromPgtype(row.CloseTime)
	if err != nil {
		return nil, err
	}

	details := store.Details{
		Name:        row.Name,
		Address:     row.Address,
		Description: row.Description,
		Contact:     row.Contact,
		Open:        open,
		Close:       closeAt,
	}
	return store.ReconstructStore(
		row.ID,
		row.OwnerID,
		details,
		row.Rating,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func TimeOfDayFromPgtype(pt pgtype.Time) (store.TimeOfDay, error) {
	minutes, err := pgconv.ClockFromPgtype(pt)
	if err != nil {
		return store.TimeOfDay{}, errs.Wrap(err, "convert store hours")
	}
	return store.TimeOfDayFromMinutes(minutes)
}
