package metrics

import (
	"sort"
	"unicode/utf8"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/utils"
)

// ratingLabels are the display labels of the rating pie, keyed by star.
var ratingLabels = map[int]string{
	5: "⭐ 5 😊",
	4: "⭐ 4 🙂",
	3: "⭐ 3 😕",
	2: "⭐ 2 😒",
	1: "⭐ 1 😑",
}

// RatingBreakdownCounts counts reviews per 1-5 star rating, ascending by
// rating. Ratings outside 1-5 (zero-filled parse failures) are dropped.
func RatingBreakdownCounts(reviews []schema.Review) []schema.RatingBreakdown {
	counts := map[int]int{}
	for _, r := range reviews {
		rating := int(r.Rating)
		if rating < 1 || rating > 5 {
			continue
		}
		counts[rating]++
	}

	out := make([]schema.RatingBreakdown, 0, len(counts))
	for rating, count := range counts {
		out = append(out, schema.RatingBreakdown{
			Rating: rating,
			Label:  ratingLabels[rating],
			Count:  count,
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Rating < out[b].Rating })
	return out
}

// ReviewLengths returns the character length of every displayable review
// body. Bucketing is left to the charting layer.
func ReviewLengths(reviews []schema.Review) []int {
	lengths := []int{}
	for _, r := range reviews {
		if utils.IsAbsentText(r.Text) {
			continue
		}
		lengths = append(lengths, utf8.RuneCountInString(r.Text))
	}
	return lengths
}
