package pipeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

// The raw tables are spreadsheet exports: any cell can hold anything.
// Coercion never fails; an unparseable value becomes the zero value, which
// is the "null then zero-filled" contract of the pipeline.

func toFloat(c schema.Cell) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.String()), 64)
	if err != nil {
		return 0
	}
	return v
}

func toInt(c schema.Cell) int {
	return int(toFloat(c))
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006",
	"02.01.2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

func toTime(c schema.Cell) time.Time {
	s := strings.TrimSpace(c.String())
	if s == "" {
		return time.Time{}
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}

	// epoch milliseconds, the default datetime encoding of the JSON export
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil && ms > 1e11 {
		return time.UnixMilli(ms).UTC()
	}
	return time.Time{}
}
