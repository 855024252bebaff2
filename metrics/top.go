package metrics

import (
	"fmt"
	"sort"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
	scoreUtil "github.com/pharmacies1927/Pharmacies-Review-Analysis/score"
)

// topPerformerLimit caps the satisfaction ranking for display.
const topPerformerLimit = 30

// TopPerformers groups listings by name (mean rating, summed reviews),
// keeps the ones with at least the mean review count, and ranks them by
// the satisfaction-normalized score.
func TopPerformers(listings []schema.Listing) []schema.TopPerformer {
	type group struct {
		ratingSum float64
		rows      int
		reviews   int
	}

	groups := map[string]*group{}
	names := []string{}
	for _, l := range listings {
		if l.AverageRating == 0 {
			// zero-filled null ratings are dropped before grouping
			continue
		}
		g, ok := groups[l.Name]
		if !ok {
			g = &group{}
			groups[l.Name] = g
			names = append(names, l.Name)
		}
		g.ratingSum += l.AverageRating
		g.rows++
		g.reviews += l.TotalReviews
	}
	if len(groups) == 0 {
		return []schema.TopPerformer{}
	}

	var reviewTotal int
	for _, g := range groups {
		reviewTotal += g.reviews
	}
	threshold := float64(reviewTotal) / float64(len(groups))

	performers := []schema.TopPerformer{}
	for _, name := range names {
		g := groups[name]
		if float64(g.reviews) < threshold {
			continue
		}
		average := g.ratingSum / float64(g.rows)
		score := scoreUtil.Satisfaction(average, g.reviews)
		performers = append(performers, schema.TopPerformer{
			Name:              name,
			AverageRating:     average,
			TotalReviews:      g.reviews,
			Score:             score,
			SatisfactionLevel: fmt.Sprintf("%.2f%%", 100-score),
		})
	}

	sort.SliceStable(performers, func(a, b int) bool {
		if performers[a].Score != performers[b].Score {
			return performers[a].Score > performers[b].Score
		}
		return performers[a].Name < performers[b].Name
	})

	if len(performers) > topPerformerLimit {
		performers = performers[:topPerformerLimit]
	}
	return performers
}
