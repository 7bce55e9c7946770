package handler

import (
	"net/http"
	"time"

	"bear-reply/backend/internal/config"
	"bear-reply/backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsMethods = []string{http.MethodPost, http.MethodOptions, http.MethodGet}
	corsHeaders = []string{"Content-Type", "Authorization"}
	corsMaxAge  = 24 * time.Hour
)

// NewRouter builds the gin engine with middleware and routes
func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestID())

	// Security headers (before CORS)
	r.Use(middleware.SecurityHeaders())

	corsConfig := cors.Config{
		AllowMethods:           corsMethods,
		AllowHeaders:           corsHeaders,
		ExposeHeaders:          []string{middleware.RequestIDHeader},
		AllowBrowserExtensions: true,
		MaxAge:                 corsMaxAge,
	}
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	// Health check endpoints (outside /api group)
	r.GET("/health", HandleHealth)
	r.GET("/ready", HandleReadiness)

	api := r.Group("/api")
	{
		api.OPTIONS("/reply", HandleReplyOptions(cfg))
		api.GET("/reply", HandleReplyInfo)
		api.POST("/reply", middleware.BodyLimit(cfg.MaxBodyBytes), HandleReply)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
