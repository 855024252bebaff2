// Package metrics computes the chart-ready summary tables of the
// dashboard. Every aggregation is stateless, works on the normalized
// tables, and returns an empty result for empty input.
package metrics

import (
	"sort"
	"time"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

// YearlyRatingTotals sums ratings per calendar year.
func YearlyRatingTotals(reviews []schema.Review) []schema.YearlyRatingTotal {
	totals := map[int]float64{}
	for _, r := range reviews {
		totals[r.Datetime.Year()] += r.Rating
	}

	out := make([]schema.YearlyRatingTotal, 0, len(totals))
	for year, total := range totals {
		out = append(out, schema.YearlyRatingTotal{Year: year, Total: total})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Year < out[b].Year })
	return out
}

type yearQuarter struct {
	year    int
	quarter int
}

// QuarterlyAverages computes the mean rating per (year, quarter), one
// series per quarter 1-4.
func QuarterlyAverages(reviews []schema.Review) []schema.QuarterlyAverage {
	sums := map[yearQuarter]float64{}
	counts := map[yearQuarter]int{}
	for _, r := range reviews {
		key := yearQuarter{
			year:    r.Datetime.Year(),
			quarter: (int(r.Datetime.Month())-1)/3 + 1,
		}
		sums[key] += r.Rating
		counts[key]++
	}

	out := make([]schema.QuarterlyAverage, 0, len(sums))
	for key, sum := range sums {
		out = append(out, schema.QuarterlyAverage{
			Year:    key.year,
			Quarter: key.quarter,
			Average: sum / float64(counts[key]),
		})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Year != out[b].Year {
			return out[a].Year < out[b].Year
		}
		return out[a].Quarter < out[b].Quarter
	})
	return out
}

type yearMonth struct {
	year  int
	month time.Month
}

// MonthlyAverages computes the mean rating per (year, month) with a
// "Jan 2006" display label, one series per calendar year.
func MonthlyAverages(reviews []schema.Review) []schema.MonthlyAverage {
	sums := map[yearMonth]float64{}
	counts := map[yearMonth]int{}
	for _, r := range reviews {
		key := yearMonth{year: r.Datetime.Year(), month: r.Datetime.Month()}
		sums[key] += r.Rating
		counts[key]++
	}

	out := make([]schema.MonthlyAverage, 0, len(sums))
	for key, sum := range sums {
		out = append(out, schema.MonthlyAverage{
			Year:    key.year,
			Month:   key.month,
			Label:   time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006"),
			Average: sum / float64(counts[key]),
		})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Year != out[b].Year {
			return out[a].Year < out[b].Year
		}
		return out[a].Month < out[b].Month
	})
	return out
}
