//go:build unit

package dto

import (
	"testing"
	"time"

	"store-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)

	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"with seconds", "2030-01-01T18:00:30", time.Date(2030, 1, 1, 18, 0, 30, 0, seoul), false},
		{"without seconds", "2030-01-01T18:00", time.Date(2030, 1, 1, 18, 0, 0, 0, seoul), false},
		{"zone suffix rejected", "2030-01-01T18:00:00Z", time.Time{}, true},
		{"date only", "2030-01-01", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.raw, seoul)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, seoul, got.Location())
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2030-01-11", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 1, 11, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("11/01/2030", time.UTC)
	assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
}

func TestFormatDateTime(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)

	assert.Equal(t, "2030-01-02T03:00:00", FormatDateTime(time.Date(2030, 1, 1, 18, 0, 0, 0, time.UTC), seoul))
	assert.Equal(t, "2030-01-01T18:00:00", FormatDateTime(time.Date(2030, 1, 1, 18, 0, 0, 0, time.UTC), nil))
	assert.Empty(t, FormatDateTime(time.Time{}, seoul))
}
