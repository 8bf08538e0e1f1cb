package pgconv

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

const microsPerMinute = int64(time.Minute / time.Microsecond)

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

// ClockToPgtype converts minutes since midnight into a TIME value.
func ClockToPgtype(minutes int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(minutes) * microsPerMinute, Valid: true}
}

// ClockFromPgtype returns minutes since midnight; seconds are dropped.
func ClockFromPgtype(pt pgtype.Time) (int, error) {
	if !pt.Valid {
		return 0, ErrInvalidTimeOfDay
	}
	m := pt.Microseconds / microsPerMinute
	if m < 0 || m >= 24*60 {
		return 0, fmt.Errorf("%w: %d microseconds", ErrInvalidTimeOfDay, pt.Microseconds)
	}
	return int(m), nil
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func Int64PtrFromPgtype(pi pgtype.Int8) *int64 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int64
}

func Int64ToPgtype(v int64) pgtype.Int8 {
	return pgtype.Int8{Int64: v, Valid: true}
}
