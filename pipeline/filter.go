package pipeline

import (
	"sort"
	"time"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

// ListingFilter selects listings for the list view. An empty field places
// no constraint, matching an untouched filter menu.
type ListingFilter struct {
	Stars   []int
	Buckets []string
	Cities  []string
}

// ReviewFilter selects reviews for the analysis view. Zero times leave the
// period unbounded on that side.
type ReviewFilter struct {
	Place string
	From  time.Time
	To    time.Time
}

// FilterListings returns a filtered copy sorted by average rating
// descending. The shared base table is never mutated.
func (c *Context) FilterListings(f ListingFilter) []schema.Listing {
	stars := intSet(f.Stars)
	buckets := stringSet(f.Buckets)
	cities := stringSet(f.Cities)

	filtered := make([]schema.Listing, 0, len(c.Listings))
	for _, l := range c.Listings {
		if stars != nil && !stars[l.AdjustedRating] {
			continue
		}
		if buckets != nil && !buckets[l.AdjustedReview] {
			continue
		}
		if cities != nil && !cities[l.City] {
			continue
		}
		filtered = append(filtered, l)
	}

	sort.SliceStable(filtered, func(a, b int) bool {
		return filtered[a].AverageRating > filtered[b].AverageRating
	})
	return filtered
}

// FilterReviews returns a filtered copy in the base table's datetime order.
func (c *Context) FilterReviews(f ReviewFilter) []schema.Review {
	filtered := make([]schema.Review, 0, len(c.Reviews))
	for _, r := range c.Reviews {
		if f.Place != "" && r.PlaceName != f.Place {
			continue
		}
		if !f.From.IsZero() && r.Datetime.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && r.Datetime.After(f.To) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// Cities lists the distinct listing cities, sorted, for the filter menu.
func (c *Context) Cities() []string {
	return distinct(c.Listings, func(l schema.Listing) string { return l.City })
}

// Places lists the distinct reviewed pharmacy names, sorted.
func (c *Context) Places() []string {
	return distinct(c.Reviews, func(r schema.Review) string { return r.PlaceName })
}

func distinct[T any](rows []T, key func(T) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, row := range rows {
		k := key(row)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func intSet(values []int) map[int]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func stringSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
