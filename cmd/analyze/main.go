// Command analyze runs the résumé analysis pipeline once, without the HTTP
// server: it extracts the text of a PDF, renders the perspective's prompt
// and calls the configured chat-completion endpoint.
// Usage: go run ./cmd/analyze -file resume.pdf -perspective interviewee
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"resumelens/internal/analysis"
	"resumelens/internal/config"
	"resumelens/internal/domain"
	"resumelens/internal/extractor"
	"resumelens/internal/service"
	"resumelens/internal/settings"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	filePath := flag.String("file", "", "path to the résumé PDF (required)")
	perspectiveFlag := flag.String("perspective", "both", "interviewee, interviewer, or both")
	outPath := flag.String("o", "", "write the analysis to this file instead of stdout")
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		return fmt.Errorf("-file is required")
	}

	perspectives, err := selectedPerspectives(*perspectiveFlag)
	if err != nil {
		return err
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := settings.NewFileStore(cfg.Store.Dir, domain.APIConfig{
		BaseURL:     cfg.Analyzer.DefaultBaseURL,
		Model:       cfg.Analyzer.DefaultModel,
		Temperature: cfg.Analyzer.DefaultTemperature,
		MaxTokens:   cfg.Analyzer.DefaultMaxTokens,
	})
	if err != nil {
		return fmt.Errorf("initializing settings store: %w", err)
	}

	fileBytes, err := os.ReadFile(*filePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *filePath, err)
	}

	documentSvc := service.NewDocumentService(extractor.NewPDFExtractor(), cfg.Upload.MaxFileSizeBytes())
	analysisSvc := service.NewAnalysisService(documentSvc, store, analysis.NewClient(cfg.Analyzer.TimeoutSecs))

	doc, err := documentSvc.Upload(service.UploadDocumentInput{
		FileName:  *filePath,
		FileBytes: fileBytes,
	})
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	log.Printf("loaded %s: %d pages, %d bytes of text", doc.FileName, doc.PageCount, len(doc.Text))

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", *outPath, err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	ctx := context.Background()
	for _, p := range perspectives {
		result, err := analysisSvc.Analyze(ctx, service.AnalyzeInput{Perspective: p})
		if err != nil {
			return fmt.Errorf("running %s analysis: %w", p, err)
		}
		if result.Error != "" {
			return fmt.Errorf("%s analysis failed: %s", p, result.Error)
		}
		fmt.Fprintf(out, "## %s analysis\n\n%s\n\n", p, result.Content)
	}

	return nil
}

func selectedPerspectives(flagValue string) ([]domain.Perspective, error) {
	switch flagValue {
	case "both":
		return domain.Perspectives, nil
	default:
		p := domain.Perspective(flagValue)
		if !p.Valid() {
			return nil, fmt.Errorf("invalid perspective %q: must be interviewee, interviewer, or both", flagValue)
		}
		return []domain.Perspective{p}, nil
	}
}
