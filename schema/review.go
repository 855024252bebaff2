package schema

import "time"

const (
	ReviewCollection = "reviews"
)

// RawReview is one review row exactly as loaded from a data source.
type RawReview struct {
	PlaceName Cell `json:"place_Name"`
	Reviewer  Cell `json:"reviewer"`
	Text      Cell `json:"text"`
	Rating    Cell `json:"rating"`
	Datetime  Cell `json:"datetime"`
}

// Review is one normalized customer review. Reviews link to a listing by
// pharmacy name, not by id; the source data is assumed to keep names unique.
type Review struct {
	PlaceName string    `bson:"place_Name" json:"place_Name"`
	Reviewer  string    `bson:"reviewer" json:"reviewer"`
	Text      string    `bson:"text" json:"text"`
	Rating    float64   `bson:"rating" json:"rating"`
	Datetime  time.Time `bson:"datetime" json:"datetime"`

	// Derived columns
	Date           string   `bson:"date" json:"date"`
	Language       string   `bson:"language,omitempty" json:"language,omitempty"`
	SentimentScore *float64 `bson:"sentiment_score,omitempty" json:"sentiment_score,omitempty"`
}
