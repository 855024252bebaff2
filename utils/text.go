package utils

import (
	"strings"
	"unicode"
)

// DigitsOnly strips every non-digit rune from a contact string.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsAbsentText reports whether a review body carries no displayable
// content. Missing values arrive as the literal "nan" when the source was
// exported through a float-typed text column.
func IsAbsentText(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || strings.EqualFold(t, "nan")
}

// EnNameToKey - normalize an *english* region name into all small case
// with underscore
func EnNameToKey(str string) string {
	return strings.Replace(strings.ToLower(str), " ", "_", -1)
}
