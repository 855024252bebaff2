package metrics

import (
	"sort"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/consts"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/utils"
)

// RegionRatings averages listing ratings per city and joins each city to
// its region boundary by canonical canton name. Cities without a known
// boundary come back unmatched so the choropleth can skip them.
func RegionRatings(listings []schema.Listing, boundaries []schema.Boundary) []schema.RegionRating {
	byCanton := map[string]bool{}
	for _, b := range boundaries {
		byCanton[b.Canton] = true
	}

	sums := map[string]float64{}
	counts := map[string]int{}
	for _, l := range listings {
		sums[l.City] += l.AverageRating
		counts[l.City]++
	}

	out := make([]schema.RegionRating, 0, len(sums))
	for city, sum := range sums {
		canton, err := consts.ChCanton(city)
		if err != nil {
			// a city may itself name a canton seat not in the mapping
			canton = city
		}

		out = append(out, schema.RegionRating{
			City:          city,
			Canton:        canton,
			CantonKey:     utils.EnNameToKey(canton),
			AverageRating: sum / float64(counts[city]),
			Listings:      counts[city],
			Matched:       byCanton[canton],
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].City < out[b].City })
	return out
}
