package dto

import (
	"time"

	"store-reservation/internal/pkg/errs"
)

// Reservation date-times travel without a zone and are read in the
// application location.
const (
	DateTimeLayout      = "2006-01-02T15:04:05"
	shortDateTimeLayout = "2006-01-02T15:04"
	DateLayout          = "2006-01-02"
)

// ParseDateTime accepts the date-time with or without seconds.
func ParseDateTime(raw string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{DateTimeLayout, shortDateTimeLayout} {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.Wrapf(errs.ErrInvalidRequest, "invalid date-time %q, expected %s", raw, DateTimeLayout)
}

func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, errs.Wrapf(errs.ErrInvalidRequest, "invalid date %q, expected %s", raw, DateLayout)
	}
	return t, nil
}

func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateTimeLayout)
}
