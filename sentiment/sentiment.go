// Package sentiment assigns a polarity score to each review using
// language-aware analysis with a rating-based fallback.
//
// Scores from different languages come from different lexicons and are not
// comparable across languages; this is a best-effort heuristic, not a
// calibrated metric.
package sentiment

import (
	log "github.com/sirupsen/logrus"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/utils"
)

// RatingScore maps a 1-5 star rating to its fixed fallback polarity. Any
// other rating has no defined score.
func RatingScore(rating float64) (float64, bool) {
	switch rating {
	case 5:
		return 1.0, true
	case 4:
		return 0.5, true
	case 3:
		return 0.0, true
	case 2:
		return -0.5, true
	case 1:
		return -1.0, true
	}
	return 0, false
}

// ScoreReview resolves the language and sentiment score of a single review.
// The score is nil when neither the text nor the rating yields one.
func ScoreReview(review schema.Review) (language string, score *float64) {
	language = Detect(review.Text)

	if analyzer, ok := ForLanguage(language); ok && !utils.IsAbsentText(review.Text) {
		s := clamp(analyzer.Score(review.Text))
		return language, &s
	}

	if s, ok := RatingScore(review.Rating); ok {
		return language, &s
	}
	return language, nil
}

// ScoreReviews returns a copy of the review table with the language and
// sentiment_score columns populated. The input slice is never mutated.
func ScoreReviews(reviews []schema.Review) []schema.Review {
	scored := make([]schema.Review, len(reviews))
	copy(scored, reviews)

	unscored := 0
	for i := range scored {
		scored[i].Language, scored[i].SentimentScore = ScoreReview(scored[i])
		if scored[i].SentimentScore == nil {
			unscored++
		}
	}

	if unscored > 0 {
		log.WithFields(log.Fields{
			"prefix":   "sentiment",
			"reviews":  len(scored),
			"unscored": unscored,
		}).Warn("reviews without a sentiment score")
	}
	return scored
}
