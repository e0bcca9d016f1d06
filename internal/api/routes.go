package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter returns an engine with recovery, request logging and all routes.
func NewRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.Logger))
	SetupRoutes(router, h)
	return router
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, h *Handler) {
	router.GET("/health", h.HandleHealth)
	router.GET("/info", h.HandleInfo)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/compress", h.HandleCompress)
		v1.POST("/decompress", h.HandleDecompress)
		v1.GET("/info", h.HandleInfo)
		v1.GET("/health", h.HandleHealth)
	}
}

func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
			"bytes":   c.Writer.Size(),
		}).Debug("Request served")
	}
}
