package score

import "sort"

// CompetitionRanks ranks values in descending order. The highest value gets
// rank 1 and ties share the minimum rank of their group, so equal inputs
// always receive equal ranks.
func CompetitionRanks(values []float64) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] > values[idx[b]]
	})

	ranks := make([]int, len(values))
	for pos, i := range idx {
		if pos > 0 && values[i] == values[idx[pos-1]] {
			ranks[i] = ranks[idx[pos-1]]
		} else {
			ranks[i] = pos + 1
		}
	}
	return ranks
}

// CompositeRanks combines the review-count rank and the rating rank of each
// listing. A lower composite rank means a better listing.
func CompositeRanks(totalReviews []int, averageRatings []float64) []int {
	reviews := make([]float64, len(totalReviews))
	for i, n := range totalReviews {
		reviews[i] = float64(n)
	}

	byReviews := CompetitionRanks(reviews)
	byRating := CompetitionRanks(averageRatings)

	composite := make([]int, len(totalReviews))
	for i := range composite {
		composite[i] = byReviews[i] + byRating[i]
	}
	return composite
}

// Satisfaction is the satisfaction-normalized score used by the
// top-performer ranking: averageRating / totalReviews * 100.
func Satisfaction(averageRating float64, totalReviews int) float64 {
	if totalReviews == 0 {
		return 0
	}
	return averageRating / float64(totalReviews) * 100
}
