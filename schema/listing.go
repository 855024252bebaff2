package schema

import "time"

const (
	ListingCollection = "pharmacies"
)

// Marker colors assigned from the review-count bucket of a listing.
const (
	MarkerGreen     = "green"
	MarkerOrange    = "orange"
	MarkerLightGray = "lightgray"
	MarkerRed       = "red"
)

// Review-count buckets shown in the list-view filter menu.
const (
	BucketMoreThan200 = "More than 200"
	Bucket100To200    = "100-200"
	Bucket50To100     = "50 to 100"
	BucketUpTo50      = "Up-to 50"
)

// RawListing is one pharmacy row exactly as loaded from a data source,
// before any coercion.
type RawListing struct {
	ID            Cell `json:"id"`
	Name          Cell `json:"name"`
	Address       Cell `json:"address"`
	Contact       Cell `json:"contact"`
	AverageRating Cell `json:"averageRating"`
	TotalReviews  Cell `json:"totalReviews"`
	Latitude      Cell `json:"latitude"`
	Longitude     Cell `json:"longitude"`
	CreatedAt     Cell `json:"createdAt"`
}

// Listing is one normalized pharmacy record. Numeric fields are always
// coerced; parse failures become zero values rather than errors.
type Listing struct {
	ID            int64     `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Address       string    `bson:"address" json:"address"`
	Contact       string    `bson:"contact" json:"contact"`
	AverageRating float64   `bson:"averageRating" json:"averageRating"`
	TotalReviews  int       `bson:"totalReviews" json:"totalReviews"`
	Latitude      float64   `bson:"latitude" json:"latitude"`
	Longitude     float64   `bson:"longitude" json:"longitude"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`

	// Derived columns
	City           string `bson:"city" json:"city"`
	MarkerColor    string `bson:"markerColor" json:"markerColor"`
	AdjustedReview string `bson:"adjustedReview" json:"adjustedReview"`
	AdjustedRating int    `bson:"adjustedRating" json:"adjustedRating"`
	Rank           int    `bson:"rank" json:"rank"`
}
