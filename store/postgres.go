package store

import (
	"context"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

const pgLogPrefix = "postgres"

// The relational tables mirror the spreadsheet export: every column is
// text, coercion stays in the pipeline.

type pgListing struct {
	ID            string `gorm:"column:id"`
	Name          string `gorm:"column:name"`
	Address       string `gorm:"column:address"`
	Contact       string `gorm:"column:contact"`
	AverageRating string `gorm:"column:averageRating"`
	TotalReviews  string `gorm:"column:totalReviews"`
	Latitude      string `gorm:"column:latitude"`
	Longitude     string `gorm:"column:longitude"`
	CreatedAt     string `gorm:"column:createdAt"`
}

func (pgListing) TableName() string {
	return "pharmacies"
}

type pgReview struct {
	PlaceName string `gorm:"column:place_Name"`
	Reviewer  string `gorm:"column:reviewer"`
	Text      string `gorm:"column:text"`
	Rating    string `gorm:"column:rating"`
	Datetime  string `gorm:"column:datetime"`
}

func (pgReview) TableName() string {
	return "reviews"
}

type postgresSource struct {
	db *gorm.DB
}

// NewPostgresSource - return postgres-backed raw table loading
func NewPostgresSource(db *gorm.DB) *postgresSource {
	return &postgresSource{
		db: db,
	}
}

func (p *postgresSource) Ping() error {
	return p.db.DB().Ping()
}

func (p *postgresSource) Close() {
	log.WithField("prefix", pgLogPrefix).Info("closing postgres connections")
	if err := p.db.Close(); err != nil {
		log.WithField("prefix", pgLogPrefix).Error(err)
	}
}

func (p *postgresSource) LoadListings(ctx context.Context) ([]schema.RawListing, error) {
	var rows []pgListing
	if err := p.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	listings := make([]schema.RawListing, 0, len(rows))
	for _, r := range rows {
		listings = append(listings, schema.RawListing{
			ID:            schema.Cell(r.ID),
			Name:          schema.Cell(r.Name),
			Address:       schema.Cell(r.Address),
			Contact:       schema.Cell(r.Contact),
			AverageRating: schema.Cell(r.AverageRating),
			TotalReviews:  schema.Cell(r.TotalReviews),
			Latitude:      schema.Cell(r.Latitude),
			Longitude:     schema.Cell(r.Longitude),
			CreatedAt:     schema.Cell(r.CreatedAt),
		})
	}
	return listings, nil
}

func (p *postgresSource) LoadReviews(ctx context.Context) ([]schema.RawReview, error) {
	var rows []pgReview
	if err := p.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	reviews := make([]schema.RawReview, 0, len(rows))
	for _, r := range rows {
		reviews = append(reviews, schema.RawReview{
			PlaceName: schema.Cell(r.PlaceName),
			Reviewer:  schema.Cell(r.Reviewer),
			Text:      schema.Cell(r.Text),
			Rating:    schema.Cell(r.Rating),
			Datetime:  schema.Cell(r.Datetime),
		})
	}
	return reviews, nil
}
