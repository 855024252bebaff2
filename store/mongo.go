package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

type mongoSource struct {
	client   *mongo.Client
	database string
}

// NewMongoSource - return mongo-backed raw table loading
func NewMongoSource(client *mongo.Client, database string) *mongoSource {
	return &mongoSource{
		client:   client,
		database: database,
	}
}

// Ping - ping mongo db
func (m *mongoSource) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoSource) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

func (m *mongoSource) LoadListings(ctx context.Context) ([]schema.RawListing, error) {
	docs, err := m.loadCollection(ctx, schema.ListingCollection)
	if err != nil {
		return nil, err
	}

	listings := make([]schema.RawListing, 0, len(docs))
	for _, doc := range docs {
		listings = append(listings, schema.RawListing{
			ID:            docCell(doc, "id"),
			Name:          docCell(doc, "name"),
			Address:       docCell(doc, "address"),
			Contact:       docCell(doc, "contact"),
			AverageRating: docCell(doc, "averageRating"),
			TotalReviews:  docCell(doc, "totalReviews"),
			Latitude:      docCell(doc, "latitude"),
			Longitude:     docCell(doc, "longitude"),
			CreatedAt:     docCell(doc, "createdAt"),
		})
	}
	return listings, nil
}

func (m *mongoSource) LoadReviews(ctx context.Context) ([]schema.RawReview, error) {
	docs, err := m.loadCollection(ctx, schema.ReviewCollection)
	if err != nil {
		return nil, err
	}

	reviews := make([]schema.RawReview, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, schema.RawReview{
			PlaceName: docCell(doc, "place_Name"),
			Reviewer:  docCell(doc, "reviewer"),
			Text:      docCell(doc, "text"),
			Rating:    docCell(doc, "rating"),
			Datetime:  docCell(doc, "datetime"),
		})
	}
	return reviews, nil
}

func (m *mongoSource) loadCollection(ctx context.Context, collection string) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(collection)
	cur, err := c.Find(ctx, bson.M{})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"collection": collection,
			"error":      err,
		}).Error("load collection")
		return nil, err
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *mongoSource) Boundaries(ctx context.Context) ([]schema.Boundary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BoundaryCollection)
	cur, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var boundaries []schema.Boundary
	if err := cur.All(ctx, &boundaries); err != nil {
		return nil, err
	}
	return boundaries, nil
}

func (m *mongoSource) ReplaceBoundaries(ctx context.Context, boundaries []schema.Boundary) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BoundaryCollection)
	if err := c.Drop(ctx); err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(boundaries))
	for _, b := range boundaries {
		docs = append(docs, b)
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := c.InsertMany(ctx, docs)
	return err
}

// docCell reads one field of a raw document as text. Sources deliver
// mixed-typed cells; nulls become the empty cell.
func docCell(doc bson.M, field string) schema.Cell {
	v, ok := doc[field]
	if !ok || v == nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return schema.Cell(t)
	case primitive.DateTime:
		return schema.Cell(t.Time().UTC().Format(time.RFC3339))
	default:
		return schema.Cell(fmt.Sprint(v))
	}
}
