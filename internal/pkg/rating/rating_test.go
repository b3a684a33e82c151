package rating

import (
	"testing"

	"github.com/campus-books-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviews(ratings ...float64) []domain.Review {
	out := make([]domain.Review, len(ratings))
	for i, r := range ratings {
		out[i] = domain.Review{Rating: r}
	}
	return out
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 0.0, Average([]domain.Review{}))
	assert.Equal(t, 4.0, Average(reviews(4)))
	assert.InDelta(t, 3.5, Average(reviews(3, 4)), 1e-9)
	assert.InDelta(t, 11.0/3.0, Average(reviews(5, 4, 2)), 1e-9)
}

func TestTop_SortsDescendingAndTruncates(t *testing.T) {
	colleges := []domain.College{
		{CollegeID: "a", Reviews: reviews(2)},
		{CollegeID: "b", Reviews: reviews(5)},
		{CollegeID: "c", Reviews: reviews(4, 4)},
		{CollegeID: "d", Reviews: reviews(3)},
	}
	top := Top(colleges, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"b", "c", "d"}, []string{top[0].CollegeID, top[1].CollegeID, top[2].CollegeID})
	assert.Equal(t, 5.0, top[0].AverageRating)
}

func TestTop_TiesKeepInsertionOrder(t *testing.T) {
	colleges := []domain.College{
		{CollegeID: "first", Reviews: reviews(4)},
		{CollegeID: "none"},
		{CollegeID: "second", Reviews: reviews(3, 5)},
		{CollegeID: "third", Reviews: reviews(4)},
	}
	top := Top(colleges, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "first", top[0].CollegeID)
	assert.Equal(t, "second", top[1].CollegeID)
	assert.Equal(t, "third", top[2].CollegeID)
}

func TestTop_FewerThanN(t *testing.T) {
	top := Top([]domain.College{{CollegeID: "only"}}, 3)
	require.Len(t, top, 1)
	assert.Equal(t, 0.0, top[0].AverageRating)
	assert.Empty(t, Top(nil, 3))
}
