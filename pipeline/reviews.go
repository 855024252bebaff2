package pipeline

import (
	"sort"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

// dateLayout is the fixed display format of the derived date column.
const dateLayout = "02-01-2006"

// NormalizeReviews turns raw review rows into the normalized review table,
// sorted ascending by datetime. Review text stays verbatim; absent bodies
// keep their source literal and are suppressed at display time.
func NormalizeReviews(raw []schema.RawReview) []schema.Review {
	reviews := make([]schema.Review, 0, len(raw))

	for _, r := range raw {
		dt := toTime(r.Datetime)
		reviews = append(reviews, schema.Review{
			PlaceName: r.PlaceName.String(),
			Reviewer:  r.Reviewer.String(),
			Text:      r.Text.String(),
			Rating:    toFloat(r.Rating),
			Datetime:  dt,
			Date:      dt.Format(dateLayout),
		})
	}

	sort.SliceStable(reviews, func(a, b int) bool {
		return reviews[a].Datetime.Before(reviews[b].Datetime)
	})
	return reviews
}
