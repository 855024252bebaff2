package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/metrics"
)

// The metric routes each serve one chart-ready summary table. Review
// metrics accept the same place/from/to filters as the review routes.

func (s *Server) yearlyRatings(c *gin.Context) {
	filter, err := reviewFilterFromQuery(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"yearly_ratings": metrics.YearlyRatingTotals(s.data().FilterReviews(filter)),
	})
}

func (s *Server) ratingBreakdown(c *gin.Context) {
	filter, err := reviewFilterFromQuery(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rating_breakdown": metrics.RatingBreakdownCounts(s.data().FilterReviews(filter)),
	})
}

func (s *Server) quarterlyAverages(c *gin.Context) {
	filter, err := reviewFilterFromQuery(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quarterly_averages": metrics.QuarterlyAverages(s.data().FilterReviews(filter)),
	})
}

func (s *Server) monthlyAverages(c *gin.Context) {
	filter, err := reviewFilterFromQuery(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"monthly_averages": metrics.MonthlyAverages(s.data().FilterReviews(filter)),
	})
}

func (s *Server) reviewLengths(c *gin.Context) {
	filter, err := reviewFilterFromQuery(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"review_lengths": metrics.ReviewLengths(s.data().FilterReviews(filter)),
	})
}

func (s *Server) regionRatings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"regions": metrics.RegionRatings(s.data().Listings, s.boundaries),
	})
}

func (s *Server) topPerformers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"top_performers": metrics.TopPerformers(s.data().Listings),
	})
}
