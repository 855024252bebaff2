package score

import (
	"math"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

// MarkerColor assigns the map marker palette from a listing's review count.
// Currently,
// Green:     100 ~
// Orange:     50 ~ 99
// Lightgray:  25 ~ 49
// Red:         0 ~ 24
func MarkerColor(totalReviews int) string {
	switch {
	case totalReviews >= 100:
		return schema.MarkerGreen
	case totalReviews >= 50:
		return schema.MarkerOrange
	case totalReviews >= 25:
		return schema.MarkerLightGray
	default:
		return schema.MarkerRed
	}
}

// ReviewBucket groups a review count into the coarse categories offered by
// the list-view filter menu.
func ReviewBucket(totalReviews int) string {
	switch {
	case totalReviews >= 200:
		return schema.BucketMoreThan200
	case totalReviews > 100:
		return schema.Bucket100To200
	case totalReviews > 50:
		return schema.Bucket50To100
	default:
		return schema.BucketUpTo50
	}
}

// AdjustedRating is the integer floor of an average rating, used as the
// star filter key.
func AdjustedRating(averageRating float64) int {
	return int(math.Floor(averageRating))
}
