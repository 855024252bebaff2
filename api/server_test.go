package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/geo"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/pipeline"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
)

type stubSource struct {
	listings []schema.RawListing
	reviews  []schema.RawReview
	pingErr  error
}

func (s *stubSource) LoadListings(context.Context) ([]schema.RawListing, error) {
	return s.listings, nil
}

func (s *stubSource) LoadReviews(context.Context) ([]schema.RawReview, error) {
	return s.reviews, nil
}

func (s *stubSource) Ping() error { return s.pingErr }
func (s *stubSource) Close()      {}

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	source := &stubSource{
		listings: []schema.RawListing{
			{ID: "1", Name: "Amavita Bahnhof", Address: "Bahnhofplatz 2, 3000 Bern, Switzerland",
				Contact: "+41 31 111 22 33", AverageRating: "4.5", TotalReviews: "120",
				Latitude: "46.948", Longitude: "7.447", CreatedAt: "2021-04-01T10:00:00Z"},
			{ID: "2", Name: "Sun Store Gare", Address: "Place de la Gare 9, 1003 Lausanne, Switzerland",
				Contact: "021 555 44 33", AverageRating: "3.2", TotalReviews: "40",
				Latitude: "46.517", Longitude: "6.629", CreatedAt: "2020-11-20T08:30:00Z"},
		},
		reviews: []schema.RawReview{
			{PlaceName: "Amavita Bahnhof", Reviewer: "A", Text: "Great service", Rating: "5", Datetime: "2021-05-01T09:00:00Z"},
			{PlaceName: "Amavita Bahnhof", Reviewer: "B", Text: "nan", Rating: "4", Datetime: "2022-02-01T09:00:00Z"},
			{PlaceName: "Sun Store Gare", Reviewer: "C", Text: "Trop lente", Rating: "2", Datetime: "2022-03-01T09:00:00Z"},
		},
	}

	dataset, err := pipeline.NewContext(context.Background(), source, geo.AddressCityResolver{})
	assert.NoError(t, err)

	boundaries := []schema.Boundary{{Canton: "Bern", Key: "bern"}}
	return NewServer(source, boundaries, geo.AddressCityResolver{}, dataset)
}

func doRequest(s *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	s.setupRouter().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s := testServer(t)
	w := doRequest(s, "GET", "/healthz")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestListListingsFiltered(t *testing.T) {
	s := testServer(t)

	w := doRequest(s, "GET", "/api/listings?cities=Bern")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Listings []schema.Listing `json:"listings"`
		Total    int              `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Amavita Bahnhof", resp.Listings[0].Name)
	assert.Equal(t, "green", resp.Listings[0].MarkerColor)
}

func TestListListingsBadStars(t *testing.T) {
	s := testServer(t)
	w := doRequest(s, "GET", "/api/listings?stars=five")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReviewsSuppressesAbsentText(t *testing.T) {
	s := testServer(t)

	w := doRequest(s, "GET", "/api/reviews?place=Amavita+Bahnhof")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reviews []schema.Review `json:"reviews"`
		Total   int             `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	for _, r := range resp.Reviews {
		assert.NotEqual(t, "nan", r.Text)
	}
}

func TestReviewKPIs(t *testing.T) {
	s := testServer(t)

	w := doRequest(s, "GET", "/api/reviews/kpi?place=Amavita+Bahnhof")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		KPI schema.KPI `json:"kpi"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.KPI.TotalReviews)
	assert.Equal(t, 4.5, resp.KPI.AverageRating)
	// two reviews over two distinct years
	assert.Equal(t, 1.0, resp.KPI.YearlyRate)
}

func TestReviewKPIsNoData(t *testing.T) {
	s := testServer(t)

	w := doRequest(s, "GET", "/api/reviews/kpi?place=Nowhere")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["no_data"])
}

func TestMetricTables(t *testing.T) {
	s := testServer(t)

	for _, target := range []string{
		"/metrics/yearly-ratings",
		"/metrics/rating-breakdown",
		"/metrics/quarterly-averages",
		"/metrics/monthly-averages",
		"/metrics/review-lengths",
		"/metrics/regions",
		"/metrics/top-performers",
	} {
		w := doRequest(s, "GET", target)
		assert.Equal(t, http.StatusOK, w.Code, "wrong status for %s", target)
	}
}

func TestRegionRatingsJoined(t *testing.T) {
	s := testServer(t)

	w := doRequest(s, "GET", "/metrics/regions")
	var resp struct {
		Regions []schema.RegionRating `json:"regions"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Regions, 2)

	for _, region := range resp.Regions {
		if region.City == "Bern" {
			assert.True(t, region.Matched)
		}
	}
}

func TestReloadRequiresAPIKey(t *testing.T) {
	s := testServer(t)
	w := doRequest(s, "POST", "/secret/reload")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReviewTimeFilter(t *testing.T) {
	s := testServer(t)

	w := doRequest(s, "GET", "/api/reviews?from=2022-01-01&to=2022-12-31")
	var resp struct {
		Total int `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}
