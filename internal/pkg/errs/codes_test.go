//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"store-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	marked := errs.Mark(errs.New("open time must be before close time"), errs.ErrInvalidRequest)

	testCases := []struct {
		name string
		err  error
		want *errs.Error
	}{
		{name: "nil stays nil", err: nil, want: nil},
		{name: "sentinel as is", err: errs.ErrAlreadyReservedTime, want: errs.ErrAlreadyReservedTime},
		{name: "wrapped sentinel", err: errs.Wrap(errs.ErrNotFoundStore, "load store 5"), want: errs.ErrNotFoundStore},
		{name: "marked domain error", err: marked, want: errs.ErrInvalidRequest},
		{name: "foreign error is internal", err: errors.New("connection reset"), want: errs.ErrInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Same(t, tc.want, errs.Resolve(tc.err))
		})
	}
}

func TestLookup(t *testing.T) {
	e, ok := errs.Lookup("ARRIVE_TOO_LATE")
	assert.True(t, ok)
	assert.Equal(t, errs.KindTemporal, e.Kind)

	_, ok = errs.Lookup("NO_SUCH_CODE")
	assert.False(t, ok)
}
