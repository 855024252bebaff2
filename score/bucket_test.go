package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

type bucketTestCase struct {
	totalReviews   int
	expectedColor  string
	expectedBucket string
}

func TestBucketBoundaries(t *testing.T) {
	cases := []bucketTestCase{
		{0, schema.MarkerRed, schema.BucketUpTo50},
		{24, schema.MarkerRed, schema.BucketUpTo50},
		{25, schema.MarkerLightGray, schema.BucketUpTo50},
		{49, schema.MarkerLightGray, schema.BucketUpTo50},
		{50, schema.MarkerOrange, schema.BucketUpTo50},
		{51, schema.MarkerOrange, schema.Bucket50To100},
		{99, schema.MarkerOrange, schema.Bucket50To100},
		{100, schema.MarkerGreen, schema.Bucket50To100},
		{101, schema.MarkerGreen, schema.Bucket100To200},
		{200, schema.MarkerGreen, schema.BucketMoreThan200},
		{1250, schema.MarkerGreen, schema.BucketMoreThan200},
	}
	for _, c := range cases {
		assert.Equal(t, c.expectedColor, MarkerColor(c.totalReviews), "wrong color for %d", c.totalReviews)
		assert.Equal(t, c.expectedBucket, ReviewBucket(c.totalReviews), "wrong bucket for %d", c.totalReviews)
	}
}

func TestBucket75(t *testing.T) {
	assert.Equal(t, schema.Bucket50To100, ReviewBucket(75))
	assert.Equal(t, schema.MarkerOrange, MarkerColor(75))
}

func TestBucketsAreTotal(t *testing.T) {
	known := map[string]bool{
		schema.BucketMoreThan200: true,
		schema.Bucket100To200:    true,
		schema.Bucket50To100:     true,
		schema.BucketUpTo50:      true,
	}
	colors := map[string]bool{
		schema.MarkerGreen:     true,
		schema.MarkerOrange:    true,
		schema.MarkerLightGray: true,
		schema.MarkerRed:       true,
	}
	for n := 0; n <= 500; n++ {
		assert.True(t, known[ReviewBucket(n)])
		assert.True(t, colors[MarkerColor(n)])
	}
}

func TestAdjustedRating(t *testing.T) {
	cases := map[float64]int{
		0:    0,
		0.9:  0,
		1:    1,
		3.2:  3,
		4.99: 4,
		5:    5,
	}
	for rating, expected := range cases {
		assert.Equal(t, expected, AdjustedRating(rating), "wrong floor for %f", rating)
	}
}
