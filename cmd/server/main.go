package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"resumelens/internal/analysis"
	"resumelens/internal/config"
	"resumelens/internal/domain"
	"resumelens/internal/extractor"
	"resumelens/internal/handler"
	"resumelens/internal/router"
	"resumelens/internal/service"
	"resumelens/internal/settings"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := settings.NewFileStore(cfg.Store.Dir, domain.APIConfig{
		BaseURL:     cfg.Analyzer.DefaultBaseURL,
		Model:       cfg.Analyzer.DefaultModel,
		Temperature: cfg.Analyzer.DefaultTemperature,
		MaxTokens:   cfg.Analyzer.DefaultMaxTokens,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize settings store: %w", err)
	}

	// Initialize services
	documentSvc := service.NewDocumentService(extractor.NewPDFExtractor(), cfg.Upload.MaxFileSizeBytes())
	analysisSvc := service.NewAnalysisService(documentSvc, store, analysis.NewClient(cfg.Analyzer.TimeoutSecs))

	// Initialize handlers
	documentH := handler.NewDocumentHandler(documentSvc)
	analysisH := handler.NewAnalysisHandler(analysisSvc)
	settingsH := handler.NewSettingsHandler(store)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, documentH, analysisH, settingsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
