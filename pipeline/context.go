package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/geo"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/sentiment"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/store"
)

// Context holds the normalized listing and review tables of one loaded
// snapshot. It is built once at startup, passed to every aggregation call,
// and treated as read-only; filters always hand out copies.
type Context struct {
	Snapshot uuid.UUID        `json:"snapshot"`
	LoadedAt time.Time        `json:"loadedAt"`
	Listings []schema.Listing `json:"listings"`
	Reviews  []schema.Review  `json:"reviews"`
}

// NewContext loads both raw tables from the source and normalizes them.
func NewContext(ctx context.Context, source store.DataSource, cities geo.CityResolver) (*Context, error) {
	rawListings, err := source.LoadListings(ctx)
	if err != nil {
		return nil, err
	}
	rawReviews, err := source.LoadReviews(ctx)
	if err != nil {
		return nil, err
	}

	listings := NormalizeListings(rawListings, cities)
	reviews := NormalizeReviews(rawReviews)
	warnDuplicateNames(listings)

	return &Context{
		Snapshot: uuid.New(),
		LoadedAt: time.Now().UTC(),
		Listings: listings,
		Reviews:  reviews,
	}, nil
}

// WithSentiment returns a copy of the context whose review table carries
// the language and sentiment_score columns.
func (c *Context) WithSentiment() *Context {
	scored := *c
	scored.Reviews = sentiment.ScoreReviews(c.Reviews)
	return &scored
}

// The review join is keyed by pharmacy name, not id. Duplicate names are a
// data-quality risk because name-keyed aggregations merge them.
func warnDuplicateNames(listings []schema.Listing) {
	seen := map[string]bool{}
	for _, l := range listings {
		if seen[l.Name] {
			log.WithFields(log.Fields{
				"prefix": "pipeline",
				"name":   l.Name,
			}).Warn("duplicate listing name; name-keyed aggregations will merge these rows")
		}
		seen[l.Name] = true
	}
}
