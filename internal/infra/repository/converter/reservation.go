package converter

import (
	"store-reservation/internal/domain/reservation"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/pgconv"
)

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		MemberID:        r.MemberID(),
		StoreID:         r.StoreID(),
		ReservationDate: pgconv.TimeToPgtype(r.Date()),
		Status:          r.Status().String(),
		Visited:         r.Visited(),
		CreatedAt:       pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReservationToUpdateParams(r *reservation.Reservation) sqlc.UpdateReservationParams {
	return sqlc.UpdateReservationParams{
		ID:              r.ID(),
		ReservationDate: pgconv.TimeToPgtype(r.Date()),
		Status:          r.Status().String(),
		Visited:         r.Visited(),
		UpdatedAt:       pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReservationFromRow(row sqlc.Reservation) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return reservation.Reconstruct(
		row.ID,
		row.MemberID,
		row.StoreID,
		pgconv.TimeFromPgtype(row.ReservationDate),
		status,
		row.Visited,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
