package store

import (
	"fmt"
	"strings"
	"time"

	"store-reservation/internal/pkg/errs"
)

var (
	ErrInvalidTimeOfDay = errs.Mark(errs.New("time of day must be HH:MM"), errs.ErrInvalidRequest)
	ErrInvalidOrderBy   = errs.Mark(errs.New("orderBy must be one of name, rating, review"), errs.ErrInvalidRequest)
)

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

func TimeOfDayFromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m >= 24*60 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: m}, nil
}

// ParseTimeOfDay accepts "15:04" and "15:04:05"; seconds are dropped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute())
		}
	}
	return TimeOfDay{}, ErrInvalidTimeOfDay
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

type OrderBy string

const (
	OrderByName   OrderBy = "name"
	OrderByRating OrderBy = "rating"
	OrderByReview OrderBy = "review"
)

// ParseOrderBy defaults to name when s is empty.
func ParseOrderBy(s string) (OrderBy, error) {
	switch o := OrderBy(strings.TrimSpace(s)); o {
	case "":
		return OrderByName, nil
	case OrderByName, OrderByRating, OrderByReview:
		return o, nil
	default:
		return "", ErrInvalidOrderBy
	}
}
