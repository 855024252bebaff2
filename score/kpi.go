package score

import (
	"fmt"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

// ErrNoData reports that a filtered review subset spans no data at all, so
// the yearly rate would divide by zero.
var ErrNoData = fmt.Errorf("no reviews in the selected period")

// KPIs computes the scalar indicators for one filtered review subset.
// datasetTotal is the review count of the whole dataset, used for the
// rating-ratio share.
func KPIs(filtered []schema.Review, datasetTotal int) (schema.KPI, error) {
	if len(filtered) == 0 || datasetTotal == 0 {
		return schema.KPI{}, ErrNoData
	}

	var sum float64
	years := map[int]struct{}{}
	for _, r := range filtered {
		sum += r.Rating
		years[r.Datetime.Year()] = struct{}{}
	}
	if len(years) == 0 {
		return schema.KPI{}, ErrNoData
	}

	total := len(filtered)
	average := sum / float64(total)

	return schema.KPI{
		TotalReviews:  total,
		AverageRating: average,
		YearlyRate:    float64(total) / float64(len(years)),
		RatingRatio:   average * float64(total) / float64(datasetTotal) * 100,
	}, nil
}
