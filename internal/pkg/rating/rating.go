// Package rating derives college ratings from embedded review lists.
package rating

import (
	"sort"

	"github.com/campus-books-server/internal/domain"
)

// Average returns the arithmetic mean of the review ratings, or 0 when there
// are no reviews.
func Average(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}

// Annotate pairs every college with its average rating, preserving order.
func Annotate(colleges []domain.College) []domain.RatedCollege {
	out := make([]domain.RatedCollege, len(colleges))
	for i, c := range colleges {
		out[i] = domain.RatedCollege{College: c, AverageRating: Average(c.Reviews)}
	}
	return out
}

// Top returns at most n colleges ordered by descending average rating. Ties
// keep the input order, so callers pass colleges in insertion order.
func Top(colleges []domain.College, n int) []domain.RatedCollege {
	rated := Annotate(colleges)
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].AverageRating > rated[j].AverageRating
	})
	if n >= 0 && len(rated) > n {
		rated = rated[:n]
	}
	return rated
}
