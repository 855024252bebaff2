package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

const fileLogPrefix = "file"

// fileSource reads the two spreadsheet-export JSON files. Both encodings
// seen in the wild are accepted: a plain array of row objects, and the
// transposed object keyed by row id.
type fileSource struct {
	listingsPath string
	reviewsPath  string
}

// NewFileSource - return file-backed raw table loading
func NewFileSource(listingsPath, reviewsPath string) *fileSource {
	return &fileSource{
		listingsPath: listingsPath,
		reviewsPath:  reviewsPath,
	}
}

func (f *fileSource) Ping() error {
	for _, p := range []string{f.listingsPath, f.reviewsPath} {
		if _, err := os.Stat(p); err != nil {
			return err
		}
	}
	return nil
}

func (f *fileSource) Close() {}

func (f *fileSource) LoadListings(ctx context.Context) ([]schema.RawListing, error) {
	var listings []schema.RawListing
	if err := decodeTable(f.listingsPath, &listings); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix": fileLogPrefix,
		"file":   f.listingsPath,
		"rows":   len(listings),
	}).Info("loaded listings")
	return listings, nil
}

func (f *fileSource) LoadReviews(ctx context.Context) ([]schema.RawReview, error) {
	var reviews []schema.RawReview
	if err := decodeTable(f.reviewsPath, &reviews); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix": fileLogPrefix,
		"file":   f.reviewsPath,
		"rows":   len(reviews),
	}).Info("loaded reviews")
	return reviews, nil
}

// decodeTable reads a JSON table into a slice of row structs, accepting
// either the array shape or the row-id keyed object shape.
func decodeTable[T any](path string, out *[]T) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err == nil {
		return nil
	}

	var keyed map[string]T
	if err := json.Unmarshal(data, &keyed); err != nil {
		return fmt.Errorf("%s is neither a row array nor a keyed table: %w", path, err)
	}

	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		na, errA := strconv.Atoi(keys[a])
		nb, errB := strconv.Atoi(keys[b])
		if errA == nil && errB == nil {
			return na < nb
		}
		return keys[a] < keys[b]
	})

	rows := make([]T, 0, len(keyed))
	for _, k := range keys {
		rows = append(rows, keyed[k])
	}
	*out = rows
	return nil
}
