package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/pipeline"
)

// reloadDataset rebuilds the pipeline context from the data source and
// swaps it in atomically. Requests in flight keep the old snapshot.
func (s *Server) reloadDataset(c *gin.Context) {
	dataset, err := pipeline.NewContext(c.Request.Context(), s.source, s.cities)
	if err != nil {
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorReloadFailed, err)
		return
	}

	if viper.GetBool("sentiment.eager") {
		dataset = dataset.WithSentiment()
	}

	s.mu.Lock()
	s.dataset = dataset
	s.mu.Unlock()

	log.WithField("snapshot", dataset.Snapshot.String()).Info("dataset reloaded")
	c.JSON(http.StatusOK, gin.H{
		"result":   "OK",
		"snapshot": dataset.Snapshot.String(),
	})
}
