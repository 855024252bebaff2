package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	cases := map[string]string{
		"+41 31 123 45 67": "41311234567",
		"031/123-45-67":    "0311234567",
		"no phone":         "",
		"":                 "",
	}
	for in, expected := range cases {
		assert.Equal(t, expected, DigitsOnly(in))
	}
}

func TestIsAbsentText(t *testing.T) {
	assert.True(t, IsAbsentText(""))
	assert.True(t, IsAbsentText("  "))
	assert.True(t, IsAbsentText("nan"))
	assert.True(t, IsAbsentText("NaN"))
	assert.False(t, IsAbsentText("sehr freundlich"))
}

func TestEnNameToKey(t *testing.T) {
	assert.Equal(t, "basel_stadt", EnNameToKey("Basel Stadt"))
}
