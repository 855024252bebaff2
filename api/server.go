package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/geo"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/logmodule"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/pipeline"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Data source backing the dashboard
	source store.DataSource

	// Region boundaries for the geographic aggregation
	boundaries []schema.Boundary

	// City resolver used when the dataset is reloaded
	cities geo.CityResolver

	// Current dataset snapshot; swapped atomically on reload
	mu      sync.RWMutex
	dataset *pipeline.Context
}

// NewServer new instance of server
func NewServer(
	source store.DataSource,
	boundaries []schema.Boundary,
	cities geo.CityResolver,
	dataset *pipeline.Context) *Server {
	return &Server{
		source:     source,
		boundaries: boundaries,
		cities:     cities,
		dataset:    dataset,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	listingRoute := apiRoute.Group("/listings")
	{
		listingRoute.GET("", s.listListings)
		listingRoute.GET("/cities", s.listCities)
	}

	reviewRoute := apiRoute.Group("/reviews")
	{
		reviewRoute.GET("", s.listReviews)
		reviewRoute.GET("/places", s.listPlaces)
		reviewRoute.GET("/kpi", s.reviewKPIs)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		metricRoute.GET("/yearly-ratings", s.yearlyRatings)
		metricRoute.GET("/rating-breakdown", s.ratingBreakdown)
		metricRoute.GET("/quarterly-averages", s.quarterlyAverages)
		metricRoute.GET("/monthly-averages", s.monthlyAverages)
		metricRoute.GET("/review-lengths", s.reviewLengths)
		metricRoute.GET("/regions", s.regionRatings)
		metricRoute.GET("/top-performers", s.topPerformers)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/reload", s.reloadDataset)
	}

	r.GET("/healthz", s.healthz)
	r.GET("/information", s.information)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// data returns the current dataset snapshot.
func (s *Server) data() *pipeline.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping the data source
	err := s.source.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	dataset := s.data()
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"dataset": map[string]interface{}{
				"snapshot":  dataset.Snapshot.String(),
				"loaded_at": dataset.LoadedAt,
				"listings":  len(dataset.Listings),
				"reviews":   len(dataset.Reviews),
			},
			"system_version": "Pharmacies Review Analysis 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
