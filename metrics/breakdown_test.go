package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

func TestRatingBreakdownCounts(t *testing.T) {
	breakdown := RatingBreakdownCounts([]schema.Review{
		{Rating: 5}, {Rating: 5}, {Rating: 1}, {Rating: 3},
		{Rating: 0}, // zero-filled parse failure, dropped
	})

	assert.Equal(t, []schema.RatingBreakdown{
		{Rating: 1, Label: "⭐ 1 😑", Count: 1},
		{Rating: 3, Label: "⭐ 3 😕", Count: 1},
		{Rating: 5, Label: "⭐ 5 😊", Count: 2},
	}, breakdown)
}

func TestRatingBreakdownEmpty(t *testing.T) {
	breakdown := RatingBreakdownCounts(nil)
	assert.NotNil(t, breakdown)
	assert.Empty(t, breakdown)
}

func TestReviewLengths(t *testing.T) {
	lengths := ReviewLengths([]schema.Review{
		{Text: "Très bien"},
		{Text: "nan"},
		{Text: ""},
		{Text: "ok"},
	})
	assert.Equal(t, []int{9, 2}, lengths)
}
