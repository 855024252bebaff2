package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/pipeline"
)

// listListings serves the filtered listing table for the map and list
// views. Filters mirror the dashboard menus; an omitted parameter places
// no constraint.
func (s *Server) listListings(c *gin.Context) {
	filter, err := listingFilterFromQuery(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	listings := s.data().FilterListings(filter)
	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
		"total":    len(listings),
	})
}

func (s *Server) listCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": s.data().Cities()})
}

func listingFilterFromQuery(c *gin.Context) (pipeline.ListingFilter, error) {
	var filter pipeline.ListingFilter

	for _, star := range splitParam(c.Query("stars")) {
		n, err := strconv.Atoi(star)
		if err != nil {
			return filter, err
		}
		filter.Stars = append(filter.Stars, n)
	}
	filter.Buckets = splitParam(c.Query("buckets"))
	filter.Cities = splitParam(c.Query("cities"))

	return filter, nil
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
