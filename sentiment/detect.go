package sentiment

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/utils"
)

// The candidate set covers the languages reviews actually arrive in.
// Italian is included so Ticino reviews fall through to the rating
// fallback instead of being misread as French.
var detector = lingua.NewLanguageDetectorBuilder().
	FromLanguages(
		lingua.English,
		lingua.German,
		lingua.French,
		lingua.Italian,
	).
	Build()

// Detect returns the ISO 639-1 code of a review body, or "" when the text
// is absent or too ambiguous to classify.
func Detect(text string) string {
	if utils.IsAbsentText(text) {
		return ""
	}

	lang, ok := detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
