package server

import (
	"time"

	httpHandler "yt-analyze/interfaces/http"
	"yt-analyze/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitiateRouter wires the analyze endpoints. An empty allowOrigins allows any origin.
func InitiateRouter(analyzeHandler httpHandler.IAnalyzeHandler, allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", analyzeHandler.Healthz)
	router.GET("/", analyzeHandler.Info)
	router.POST("/analyze", analyzeHandler.Analyze)

	api := router.Group("api")
	{
		api.GET("", analyzeHandler.Info)
		api.POST("", analyzeHandler.Analyze)
		api.POST("/analyze", analyzeHandler.Analyze)
	}

	return router
}
