package store

import "math"

// AverageRating is the mean of ratings rounded half-up to one decimal place.
// An empty set averages to 0.
func AverageRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return math.Floor(sum/float64(len(ratings))*10+0.5) / 10
}
