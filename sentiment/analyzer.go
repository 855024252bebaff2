package sentiment

import (
	"strings"
	"unicode"
)

// Analyzer scores one review body. Scores are polarity values in [-1, 1].
type Analyzer interface {
	Score(text string) float64
}

// analyzers maps ISO 639-1 codes to the analyzer strategy for that
// language. Adding a language means adding one entry here.
var analyzers = map[string]Analyzer{
	"en": englishAnalyzer{},
	"de": lexiconAnalyzer{lexicon: germanLexicon, negators: germanNegators, intensifiers: germanIntensifiers},
	"fr": lexiconAnalyzer{lexicon: frenchLexicon, negators: frenchNegators, intensifiers: frenchIntensifiers},
}

// ForLanguage returns the analyzer registered for a language code.
func ForLanguage(code string) (Analyzer, bool) {
	a, ok := analyzers[code]
	return a, ok
}

// SupportedLanguages lists the codes with a registered analyzer.
func SupportedLanguages() []string {
	codes := make([]string, 0, len(analyzers))
	for code := range analyzers {
		codes = append(codes, code)
	}
	return codes
}

// lexiconAnalyzer averages the polarity of known words. Negators flip the
// sign of the following polar word, intensifiers scale it.
type lexiconAnalyzer struct {
	lexicon      map[string]float64
	negators     map[string]bool
	intensifiers map[string]float64
}

func (a lexiconAnalyzer) Score(text string) float64 {
	words := tokenize(text)

	var sum float64
	var matched int
	negated := false
	boost := 1.0

	for _, w := range words {
		if a.negators[w] {
			negated = true
			continue
		}
		if factor, ok := a.intensifiers[w]; ok {
			boost = factor
			continue
		}

		polarity, ok := a.lexicon[w]
		if !ok {
			continue
		}
		if negated {
			polarity = -polarity
		}
		sum += polarity * boost
		matched++
		negated = false
		boost = 1.0
	}

	if matched == 0 {
		return 0
	}
	return clamp(sum / float64(matched))
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func clamp(score float64) float64 {
	if score > 1 {
		return 1
	}
	if score < -1 {
		return -1
	}
	return score
}
