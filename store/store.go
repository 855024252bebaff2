package store

import (
	"context"
	"fmt"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

var (
	ErrUnknownDriver = fmt.Errorf("unknown datasource driver")
)

// DataSource loads the two raw tables backing one dashboard session. The
// tables are read once per session and never written back.
type DataSource interface {
	LoadListings(ctx context.Context) ([]schema.RawListing, error)
	LoadReviews(ctx context.Context) ([]schema.RawReview, error)
	Pinger
	Closer
}

// BoundaryStore additionally serves the geographic region boundaries used
// by the per-region aggregation.
type BoundaryStore interface {
	Boundaries(ctx context.Context) ([]schema.Boundary, error)
	ReplaceBoundaries(ctx context.Context, boundaries []schema.Boundary) error
}

// Closer - close the underlying connection
type Closer interface {
	Close()
}

// Pinger - check the source is reachable
type Pinger interface {
	Ping() error
}
