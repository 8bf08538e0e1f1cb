//go:build unit

package store_test

import (
	"testing"

	"store-reservation/internal/domain/store"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	testCases := []struct {
		name    string
		ratings []float64
		want    float64
	}{
		{name: "no reviews", ratings: nil, want: 0},
		{name: "single", ratings: []float64{3.5}, want: 3.5},
		{name: "exact mean", ratings: []float64{4, 5}, want: 4.5},
		{name: "quarter steps", ratings: []float64{4, 4, 4.5, 5}, want: 4.4},
		{name: "rounds down below half", ratings: []float64{4, 4, 5}, want: 4.3},
		{name: "rounds up above half", ratings: []float64{4, 5, 5}, want: 4.7},
		{name: "all zero", ratings: []float64{0, 0}, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, store.AverageRating(tc.ratings), 1e-9)
		})
	}
}
