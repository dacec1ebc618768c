package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wayli-app/wayli-sub001/internal/config"
	"github.com/wayli-app/wayli-sub001/internal/database"
	"github.com/wayli-app/wayli-sub001/internal/handler"
	"github.com/wayli-app/wayli-sub001/internal/middleware"
	"github.com/wayli-app/wayli-sub001/internal/repository"
	"github.com/wayli-app/wayli-sub001/internal/service"
)

// SetupRouter wires the HTTP surface around the analysis engine.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Trip analysis API is running",
		})
	})

	pointRepo := repository.NewPointRepository(database.GetDB())
	analysisService := service.NewAnalysisService(pointRepo, cfg.MaxPoints)
	analysisHandler := handler.NewAnalysisHandler(analysisService)

	api := r.Group("/api/v1")
	api.Use(middleware.Auth(cfg.JWTSecret))
	api.Use(middleware.RateLimit(30, time.Minute))
	{
		api.POST("/points", analysisHandler.IngestBatch)
		api.POST("/analysis", analysisHandler.AnalyzeBatch)
		api.GET("/analysis", analysisHandler.AnalyzeRange)
	}

	return r
}
