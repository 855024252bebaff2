package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func contextFixture() *Context {
	return &Context{
		Listings: NormalizeListings(rawListingFixture(), cityResolver),
		Reviews:  NormalizeReviews(rawReviewFixture()),
	}
}

func TestFilterListingsNoConstraint(t *testing.T) {
	c := contextFixture()
	filtered := c.FilterListings(ListingFilter{})
	assert.Len(t, filtered, len(c.Listings))

	// list view order: average rating descending
	for i := 1; i < len(filtered); i++ {
		assert.GreaterOrEqual(t, filtered[i-1].AverageRating, filtered[i].AverageRating)
	}
}

func TestFilterListingsByStarBucketCity(t *testing.T) {
	c := contextFixture()

	filtered := c.FilterListings(ListingFilter{Stars: []int{4}})
	assert.Len(t, filtered, 2)

	filtered = c.FilterListings(ListingFilter{Buckets: []string{"50 to 100"}})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Sun Store Gare", filtered[0].Name)

	filtered = c.FilterListings(ListingFilter{Cities: []string{"Bern"}, Stars: []int{4}})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Amavita Bahnhof", filtered[0].Name)

	filtered = c.FilterListings(ListingFilter{Cities: []string{"Nowhere"}})
	assert.Empty(t, filtered)
}

func TestFilterListingsReturnsCopy(t *testing.T) {
	c := contextFixture()
	filtered := c.FilterListings(ListingFilter{})
	filtered[0].Name = "mutated"

	for _, l := range c.Listings {
		assert.NotEqual(t, "mutated", l.Name)
	}
}

func TestFilterReviews(t *testing.T) {
	c := contextFixture()

	filtered := c.FilterReviews(ReviewFilter{Place: "Amavita Bahnhof"})
	assert.Len(t, filtered, 2)

	filtered = c.FilterReviews(ReviewFilter{
		From: time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC),
	})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Sun Store Gare", filtered[0].PlaceName)
}

func TestDistinctMenus(t *testing.T) {
	c := contextFixture()
	assert.Equal(t, []string{"Bern", "Lausanne", "Unknown"}, c.Cities())
	assert.Equal(t, []string{"Amavita Bahnhof", "Sun Store Gare"}, c.Places())
}
