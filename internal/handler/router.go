package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tableview/backend/internal/config"
)

// NewRouter wires middleware and routes.
func NewRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadBytes
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(logger))
	r.Use(corsMiddleware(cfg.AllowedOrigins))

	r.GET("/health", Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/upload", bodyLimit(cfg.MaxUploadBytes), UploadHandler)
		api.GET("/mock-data", MockDataHandler)
	}

	return r
}
