package review

import (
	"math"
	"strings"
	"unicode/utf8"

	"store-reservation/internal/pkg/errs"
)

const (
	MaxContentLength = 1000
	MinRating        = 0.0
	MaxRating        = 5.0
)

var (
	ErrInvalidRating  = errs.Mark(errs.New("rating must be between 0 and 5"), errs.ErrInvalidRequest)
	ErrEmptyContent   = errs.Mark(errs.New("content cannot be empty"), errs.ErrInvalidRequest)
	ErrContentTooLong = errs.Mark(errs.New("content exceeds maximum length"), errs.ErrInvalidRequest)
)

type Rating struct {
	value float64
}

func NewRating(v float64) (Rating, error) {
	if math.IsNaN(v) || v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() float64 { return r.value }

type Content struct {
	text string
}

func NewContent(s string) (Content, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Content{}, ErrEmptyContent
	}
	if utf8.RuneCountInString(t) > MaxContentLength {
		return Content{}, ErrContentTooLong
	}
	return Content{text: t}, nil
}

func (c Content) String() string { return c.text }
