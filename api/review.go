package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/pipeline"
	scoreUtil "github.com/pharmacies1927/Pharmacies-Review-Analysis/score"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/sentiment"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/utils"
)

const queryDateLayout = "2006-01-02"

// listReviews serves the filtered review table. With sentiment=true the
// rows carry language and sentiment_score columns.
func (s *Server) listReviews(c *gin.Context) {
	filter, err := reviewFilterFromQuery(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	reviews := s.data().FilterReviews(filter)
	if c.Query("sentiment") == "true" {
		reviews = sentiment.ScoreReviews(reviews)
	}

	// absent bodies are suppressed for display
	for i := range reviews {
		if utils.IsAbsentText(reviews[i].Text) {
			reviews[i].Text = ""
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

func (s *Server) listPlaces(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"places": s.data().Places()})
}

// reviewKPIs serves the scalar indicators of one filtered subset. An empty
// subset is a no-data condition, not a server error.
func (s *Server) reviewKPIs(c *gin.Context) {
	filter, err := reviewFilterFromQuery(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	dataset := s.data()
	kpi, err := scoreUtil.KPIs(dataset.FilterReviews(filter), len(dataset.Reviews))
	if err == scoreUtil.ErrNoData {
		c.JSON(http.StatusOK, gin.H{
			"no_data": true,
			"message": s.localizeNoData(c),
		})
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"kpi": kpi})
}

func (s *Server) localizeNoData(c *gin.Context) string {
	localizer := utils.NewLocalizer(c.GetHeader("Accept-Language"))
	message, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    "no_data",
			Other: "No reviews in the selected period",
		},
	})
	if err != nil {
		return errorMessageMap[errorNoData.Code]
	}
	return message
}

func reviewFilterFromQuery(c *gin.Context) (pipeline.ReviewFilter, error) {
	filter := pipeline.ReviewFilter{
		Place: c.Query("place"),
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(queryDateLayout, from)
		if err != nil {
			return filter, err
		}
		filter.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(queryDateLayout, to)
		if err != nil {
			return filter, err
		}
		// the period slider selects whole days, keep the end inclusive
		filter.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	return filter, nil
}
