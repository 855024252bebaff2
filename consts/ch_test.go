package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/consts"
)

func TestChCantonKey(t *testing.T) {
	mapping := map[string]string{
		"Zürich":       "zürich",
		"Winterthur":   "zürich",
		"Bern":         "bern",
		"Biel":         "bern",
		"Lausanne":     "vaud",
		"Basel":        "basel-stadt",
		"St. Gallen":   "st._gallen",
		"Sion":         "valais",
		"Lugano":       "ticino",
		"Chur":         "graubünden",
		"Appenzell":    "appenzell_innerrhoden",
		"Schaffhausen": "schaffhausen",
	}

	for city, key := range mapping {
		actual, err := consts.ChCantonKey(city)
		assert.NoError(t, err)
		assert.Equal(t, key, actual, "wrong key")
	}
}

func TestChCantonUnknownCity(t *testing.T) {
	_, err := consts.ChCanton("Atlantis")
	assert.Error(t, err)
}
