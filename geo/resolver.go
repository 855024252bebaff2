package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

var (
	ErrMalformedAddress       = fmt.Errorf("address has no city segment")
	ErrNoGeoInfoFound         = fmt.Errorf("no geo information found")
	ErrResolverNotInitialized = fmt.Errorf("city resolver is not initialized")
)

// UnknownCity is the sentinel label used when no resolver can name a city.
const UnknownCity = "Unknown"

// Place carries the location fields of one listing that are relevant for
// city resolution.
type Place struct {
	Address   string
	Latitude  float64
	Longitude float64
}

// CityResolver - interface for resolving the city of a place
type CityResolver interface {
	ResolveCity(Place) (string, error)
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// AddressCityResolver parses the city out of a free-text address of the
// form "street, postal-code city[, country]". Addresses with a country
// suffix name the city in the second-to-last comma segment; two-segment
// addresses name it in the last one. Fewer than two segments is a
// malformed address.
type AddressCityResolver struct{}

func (AddressCityResolver) ResolveCity(p Place) (string, error) {
	segments := strings.Split(p.Address, ", ")
	if len(segments) < 2 {
		return "", ErrMalformedAddress
	}

	segment := segments[len(segments)-1]
	if len(segments) >= 3 {
		segment = segments[len(segments)-2]
	}

	fields := strings.Fields(segment)
	if len(fields) == 0 {
		return "", ErrMalformedAddress
	}
	return fields[len(fields)-1], nil
}

// GeocodingCityResolver falls back to reverse geocoding the listing
// coordinates when the address text is unusable.
type GeocodingCityResolver struct {
	client *maps.Client
}

func NewGeocodingCityResolver(client *maps.Client) *GeocodingCityResolver {
	return &GeocodingCityResolver{
		client: client,
	}
}

func (g *GeocodingCityResolver) ResolveCity(p Place) (string, error) {
	if p.Latitude == 0 && p.Longitude == 0 {
		return "", ErrNoGeoInfoFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: p.Latitude,
			Lng: p.Longitude,
		},
		ResultType: []string{"locality|administrative_area_level_1"},
		Language:   "en",
	})
	if nil != err {
		return "", err
	}

	if len(geos) == 0 {
		return "", ErrNoGeoInfoFound
	}

	var level1 string
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) == 0 {
			continue
		}
		switch a.Types[0] {
		case "locality":
			return a.LongName, nil
		case "administrative_area_level_1":
			level1 = a.LongName
		}
	}

	if level1 != "" {
		return level1, nil
	}
	return "", ErrNoGeoInfoFound
}

type MultipleCityResolver struct {
	resolvers []CityResolver
}

func NewMultipleCityResolver(resolvers ...CityResolver) *MultipleCityResolver {
	return &MultipleCityResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleCityResolver) ResolveCity(p Place) (string, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		city, err := resolver.ResolveCity(p)
		if err != nil {
			errors = append(errors, err)
		} else {
			return city, nil
		}
	}

	return "", NewMultipleResolverErrors(errors)
}

// CityOrUnknown resolves a city with an explicit sentinel fallback, so a
// malformed address degrades a single row instead of failing the pipeline.
func CityOrUnknown(r CityResolver, p Place) string {
	if r == nil {
		return UnknownCity
	}
	city, err := r.ResolveCity(p)
	if err != nil {
		return UnknownCity
	}
	return city
}
