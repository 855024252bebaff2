package sentiment

import "github.com/jonreiter/govader"

var vader = govader.NewSentimentIntensityAnalyzer()

// englishAnalyzer scores English text with the VADER polarity lexicon. The
// compound score is already normalized to [-1, 1].
type englishAnalyzer struct{}

func (englishAnalyzer) Score(text string) float64 {
	return clamp(vader.PolarityScores(text).Compound)
}
