package pipeline

import (
	"sort"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/geo"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
	scoreUtil "github.com/pharmacies1927/Pharmacies-Review-Analysis/score"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/utils"
)

// NormalizeListings turns raw pharmacy rows into the normalized listing
// table: numeric coercion, digits-only contact, the derived city / bucket /
// rank columns, sorted ascending by rank. The function is pure and
// idempotent on its own output.
func NormalizeListings(raw []schema.RawListing, cities geo.CityResolver) []schema.Listing {
	listings := make([]schema.Listing, 0, len(raw))

	for _, r := range raw {
		l := schema.Listing{
			ID:            int64(toFloat(r.ID)),
			Name:          r.Name.String(),
			Address:       r.Address.String(),
			Contact:       utils.DigitsOnly(r.Contact.String()),
			AverageRating: toFloat(r.AverageRating),
			TotalReviews:  toInt(r.TotalReviews),
			Latitude:      toFloat(r.Latitude),
			Longitude:     toFloat(r.Longitude),
			CreatedAt:     toTime(r.CreatedAt),
		}
		if l.TotalReviews < 0 {
			l.TotalReviews = 0
		}

		l.City = geo.CityOrUnknown(cities, geo.Place{
			Address:   l.Address,
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
		})
		l.MarkerColor = scoreUtil.MarkerColor(l.TotalReviews)
		l.AdjustedReview = scoreUtil.ReviewBucket(l.TotalReviews)
		l.AdjustedRating = scoreUtil.AdjustedRating(l.AverageRating)

		listings = append(listings, l)
	}

	totals := make([]int, len(listings))
	ratings := make([]float64, len(listings))
	for i, l := range listings {
		totals[i] = l.TotalReviews
		ratings[i] = l.AverageRating
	}
	for i, rank := range scoreUtil.CompositeRanks(totals, ratings) {
		listings[i].Rank = rank
	}

	sort.SliceStable(listings, func(a, b int) bool {
		return listings[a].Rank < listings[b].Rank
	})
	return listings
}
