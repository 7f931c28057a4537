package router

import (
	"github.com/gin-gonic/gin"

	"resumelens/internal/config"
	"resumelens/internal/handler"
	"resumelens/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	documentH *handler.DocumentHandler,
	analysisH *handler.AnalysisHandler,
	settingsH *handler.SettingsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	// Document routes
	documents := v1.Group("/documents")
	documents.POST("", documentH.Upload)
	documents.GET("/active", documentH.Get)
	documents.DELETE("/active", documentH.Delete)

	// Analysis routes
	analyses := v1.Group("/analyses")
	analyses.GET("/export", analysisH.ExportHistory)
	analyses.POST("/:perspective", analysisH.Analyze)
	analyses.GET("/:perspective", analysisH.Get)
	analyses.GET("/:perspective/download", analysisH.Download)

	// Settings routes
	settings := v1.Group("/settings")
	settings.GET("/config", settingsH.GetAPIConfig)
	settings.PUT("/config", settingsH.UpdateAPIConfig)
	settings.DELETE("/config", settingsH.ResetAPIConfig)
	settings.GET("/prompts", settingsH.GetPrompts)
	settings.PUT("/prompts", settingsH.UpdatePrompts)
	settings.POST("/prompts/:perspective/reset", settingsH.ResetPrompt)

	return r
}
