package api

import (
	"net/http"

	"ainewsdesk/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewServer creates the HTTP server with all routes configured.
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Error("Panic in request handler", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	// Routes
	r.GET("/api/news", handler.GetNews)

	// Health and status endpoints
	r.GET("/health", handler.HealthCheck)
	r.GET("/metrics", handler.GetMetrics)

	return r
}
