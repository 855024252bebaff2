package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

func rawReviewFixture() []schema.RawReview {
	return []schema.RawReview{
		{PlaceName: "Amavita Bahnhof", Reviewer: "C", Text: "Sehr freundlich", Rating: "5", Datetime: "2022-06-10T09:00:00Z"},
		{PlaceName: "Amavita Bahnhof", Reviewer: "A", Text: "nan", Rating: "4", Datetime: "2021-02-01T12:00:00Z"},
		{PlaceName: "Sun Store Gare", Reviewer: "B", Text: "Service rapide", Rating: "bad", Datetime: "2021-08-15T16:30:00Z"},
	}
}

func TestNormalizeReviews(t *testing.T) {
	reviews := NormalizeReviews(rawReviewFixture())
	assert.Len(t, reviews, 3)

	// sorted ascending by datetime
	assert.Equal(t, "A", reviews[0].Reviewer)
	assert.Equal(t, "B", reviews[1].Reviewer)
	assert.Equal(t, "C", reviews[2].Reviewer)

	// derived date column uses the fixed DD-MM-YYYY layout
	assert.Equal(t, "01-02-2021", reviews[0].Date)
	assert.Equal(t, "10-06-2022", reviews[2].Date)

	// rating coercion failures become zero
	assert.Equal(t, 0.0, reviews[1].Rating)
	assert.Equal(t, 5.0, reviews[2].Rating)

	// text stays verbatim, including the absent marker
	assert.Equal(t, "nan", reviews[0].Text)
}

func TestNormalizeReviewsEpochMillis(t *testing.T) {
	reviews := NormalizeReviews([]schema.RawReview{
		{PlaceName: "X", Rating: "3", Datetime: "1654848000000"},
	})
	assert.Equal(t, time.Date(2022, time.June, 10, 8, 0, 0, 0, time.UTC), reviews[0].Datetime)
}

func TestNormalizeReviewsEmpty(t *testing.T) {
	assert.Empty(t, NormalizeReviews(nil))
}
