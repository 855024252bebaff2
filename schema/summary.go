package schema

import "time"

// Chart-ready summary rows produced by the metrics aggregations. Each type
// mirrors one grouped table consumed directly by a chart trace.

type YearlyRatingTotal struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

type RatingBreakdown struct {
	Rating int    `json:"rating"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type QuarterlyAverage struct {
	Year    int     `json:"year"`
	Quarter int     `json:"quarter"`
	Average float64 `json:"average"`
}

type MonthlyAverage struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Label   string     `json:"label"`
	Average float64    `json:"average"`
}

// RegionRating is the per-region geographic aggregate. Matched reports
// whether the city resolved to a known boundary region.
type RegionRating struct {
	City          string  `json:"city"`
	Canton        string  `json:"canton"`
	CantonKey     string  `json:"cantonKey"`
	AverageRating float64 `json:"averageRating"`
	Listings      int     `json:"listings"`
	Matched       bool    `json:"matched"`
}

// TopPerformer is one row of the satisfaction ranking. Score is
// averageRating/totalReviews*100; SatisfactionLevel is its complement
// formatted for display.
type TopPerformer struct {
	Name              string  `json:"name"`
	AverageRating     float64 `json:"averageRating"`
	TotalReviews      int     `json:"totalReviews"`
	Score             float64 `json:"score"`
	SatisfactionLevel string  `json:"satisfactionLevel"`
}

// KPI holds the scalar indicators for one filtered review subset.
type KPI struct {
	TotalReviews  int     `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	YearlyRate    float64 `json:"yearly_rate"`
	RatingRatio   float64 `json:"rating_ratio"`
}
