package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

func TestRatingScore(t *testing.T) {
	expected := map[float64]float64{
		5: 1.0,
		4: 0.5,
		3: 0.0,
		2: -0.5,
		1: -1.0,
	}
	for rating, score := range expected {
		actual, ok := RatingScore(rating)
		assert.True(t, ok)
		assert.Equal(t, score, actual, "wrong fallback for rating %v", rating)
	}

	for _, rating := range []float64{0, 6, 4.5, -1} {
		_, ok := RatingScore(rating)
		assert.False(t, ok, "rating %v must have no fallback", rating)
	}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, "en", Detect("The staff was incredibly friendly and the service was quick."))
	assert.Equal(t, "de", Detect("Die Mitarbeiter waren sehr freundlich und kompetent, gerne wieder."))
	assert.Equal(t, "fr", Detect("Le personnel est très aimable et la pharmacie est bien organisée."))
	assert.Equal(t, "", Detect(""))
	assert.Equal(t, "", Detect("nan"))
}

func TestEnglishAnalyzer(t *testing.T) {
	a, ok := ForLanguage("en")
	assert.True(t, ok)

	positive := a.Score("Great pharmacy, friendly and helpful staff!")
	negative := a.Score("Terrible service, rude staff, a complete disaster.")
	assert.Greater(t, positive, 0.0)
	assert.Less(t, negative, 0.0)
}

func TestGermanAnalyzer(t *testing.T) {
	a, ok := ForLanguage("de")
	assert.True(t, ok)

	assert.Greater(t, a.Score("Sehr freundlich und kompetent"), 0.0)
	assert.Less(t, a.Score("Unfreundlich und langsam, eine Katastrophe"), 0.0)
	// negation flips polarity
	assert.Less(t, a.Score("nicht freundlich"), 0.0)
}

func TestFrenchAnalyzer(t *testing.T) {
	a, ok := ForLanguage("fr")
	assert.True(t, ok)

	assert.Greater(t, a.Score("très aimable et efficace"), 0.0)
	assert.Less(t, a.Score("service horrible, personnel impoli"), 0.0)
	assert.Less(t, a.Score("pas rapide"), 0.0)
}

func TestScoresStayInRange(t *testing.T) {
	texts := []string{
		"absolutely amazing wonderful fantastic perfect great excellent",
		"horrible terrible awful disaster worst rude",
		"Sehr sehr freundlich hilfsbereit kompetent perfekt super toll",
		"très très parfait excellent génial super",
	}
	for _, code := range SupportedLanguages() {
		a, _ := ForLanguage(code)
		for _, text := range texts {
			s := a.Score(text)
			assert.GreaterOrEqual(t, s, -1.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}

func TestScoreReviewFallback(t *testing.T) {
	// unsupported language with a standard rating falls back to the table
	_, score := ScoreReview(schema.Review{Text: "Ottima farmacia, personale gentile e disponibile.", Rating: 5})
	assert.NotNil(t, score)
	assert.Equal(t, 1.0, *score)

	// absent text with a standard rating falls back as well
	_, score = ScoreReview(schema.Review{Text: "nan", Rating: 2})
	assert.NotNil(t, score)
	assert.Equal(t, -0.5, *score)

	// absent text and a non-standard rating yields no score
	_, score = ScoreReview(schema.Review{Text: "", Rating: 0})
	assert.Nil(t, score)
}

func TestScoreReviewsDoesNotMutateInput(t *testing.T) {
	reviews := []schema.Review{
		{Text: "Great pharmacy, friendly staff.", Rating: 5},
		{Text: "", Rating: 0},
	}

	scored := ScoreReviews(reviews)
	assert.Len(t, scored, 2)
	assert.NotNil(t, scored[0].SentimentScore)
	assert.Nil(t, scored[1].SentimentScore)

	assert.Empty(t, reviews[0].Language)
	assert.Nil(t, reviews[0].SentimentScore)
}
