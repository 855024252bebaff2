package geojson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/store"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/utils"
)

type GeoFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   schema.Geometry        `json:"geometry"`
}

type GeoJSON struct {
	Name     string       `json:"name"`
	Features []GeoFeature `json:"features"`
}

// cantonNameProperty is the feature key of the Swiss canton dataset
// (georef-switzerland-kanton).
const cantonNameProperty = "kan_name"

// LoadCantonBoundaries reads a Swiss canton GeoJSON file into boundary
// records keyed by canonical canton name.
func LoadCantonBoundaries(geoJSONFile string) ([]schema.Boundary, error) {
	file, err := os.Open(geoJSONFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var result GeoJSON
	if err := json.NewDecoder(file).Decode(&result); err != nil {
		return nil, err
	}

	boundaries := make([]schema.Boundary, 0, len(result.Features))
	for _, feature := range result.Features {
		name, ok := feature.Properties[cantonNameProperty].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("feature without a %s property", cantonNameProperty)
		}
		boundaries = append(boundaries, schema.Boundary{
			Canton:   name,
			Key:      utils.EnNameToKey(name),
			Geometry: feature.Geometry,
		})
	}
	return boundaries, nil
}

// ImportCantonBoundaries replaces the boundary collection with the regions
// of a canton GeoJSON file.
func ImportCantonBoundaries(client *mongo.Client, dbName, geoJSONFile string) error {
	boundaries, err := LoadCantonBoundaries(geoJSONFile)
	if err != nil {
		return err
	}

	return store.NewMongoSource(client, dbName).ReplaceBoundaries(context.Background(), boundaries)
}
