package service

import (
	"context"
	"log"
	"sync"
	"unicode/utf8"

	"resumelens/internal/domain"
	"resumelens/internal/port"
	"resumelens/internal/prompt"
	"resumelens/internal/settings"
)

const historyExcerptLen = 200

// AnalyzeInput is the DTO for triggering one analysis request.
type AnalyzeInput struct {
	Perspective    domain.Perspective
	PromptOverride string
}

// AnalysisService orchestrates one analysis request per perspective: it
// gates on document presence, config validity and a per-perspective
// in-flight flag, renders the prompt and settles the client's result into a
// map keyed by perspective. Results for different perspectives are fully
// independent and never merged.
type AnalysisService interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*domain.AnalysisResult, error)
	Result(p domain.Perspective) (*domain.AnalysisResult, error)
	Status(p domain.Perspective) domain.AnalysisStatus
	History() []domain.AnalysisRecord
}

type analysisService struct {
	docs   DocumentService
	store  port.SettingsStore
	client port.AnalysisClient

	mu       sync.Mutex
	inFlight map[domain.Perspective]bool
	results  map[domain.Perspective]domain.AnalysisResult
	history  []domain.AnalysisRecord
}

// NewAnalysisService creates an AnalysisService implementation.
func NewAnalysisService(docs DocumentService, store port.SettingsStore, client port.AnalysisClient) AnalysisService {
	return &analysisService{
		docs:     docs,
		store:    store,
		client:   client,
		inFlight: make(map[domain.Perspective]bool),
		results:  make(map[domain.Perspective]domain.AnalysisResult),
	}
}

func (s *analysisService) Analyze(ctx context.Context, input AnalyzeInput) (*domain.AnalysisResult, error) {
	if !input.Perspective.Valid() {
		return nil, domain.ErrInvalidPerspective
	}

	doc, err := s.docs.Active()
	if err != nil {
		return nil, err
	}

	cfg, err := s.store.LoadAPIConfig()
	if err != nil {
		return nil, err
	}
	if err := settings.ValidateAPIConfig(cfg); err != nil {
		return nil, err
	}

	templates, err := s.store.LoadPromptTemplates()
	if err != nil {
		return nil, err
	}
	rendered := prompt.Render(doc.Text, input.Perspective, input.PromptOverride, templates)

	// One request per perspective at a time; a duplicate trigger is rejected
	// rather than queued.
	s.mu.Lock()
	if s.inFlight[input.Perspective] {
		s.mu.Unlock()
		return nil, domain.ErrAnalysisInFlight
	}
	s.inFlight[input.Perspective] = true
	s.mu.Unlock()

	log.Printf("analysisService.Analyze: requesting %s analysis of %s with model %s",
		input.Perspective, doc.FileName, cfg.Model)

	result := s.client.Analyze(ctx, rendered, cfg)
	result.Perspective = input.Perspective

	s.mu.Lock()
	s.inFlight[input.Perspective] = false
	s.results[input.Perspective] = result
	s.history = append(s.history, record(doc.FileName, result))
	s.mu.Unlock()

	if result.Error != "" {
		log.Printf("analysisService.Analyze: %s analysis failed: %s", input.Perspective, result.Error)
	}
	return &result, nil
}

func (s *analysisService) Result(p domain.Perspective) (*domain.AnalysisResult, error) {
	if !p.Valid() {
		return nil, domain.ErrInvalidPerspective
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.results[p]
	if !ok {
		return nil, domain.ErrNoResult
	}
	return &result, nil
}

func (s *analysisService) Status(p domain.Perspective) domain.AnalysisStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[p] {
		return domain.AnalysisStatusRequesting
	}
	result, ok := s.results[p]
	if !ok {
		return domain.AnalysisStatusIdle
	}
	if result.Error != "" {
		return domain.AnalysisStatusFailed
	}
	return domain.AnalysisStatusCompleted
}

func (s *analysisService) History() []domain.AnalysisRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AnalysisRecord, len(s.history))
	copy(out, s.history)
	return out
}

func record(docName string, r domain.AnalysisResult) domain.AnalysisRecord {
	status := "ok"
	excerpt := r.Content
	if r.Error != "" {
		status = "error"
		excerpt = r.Error
	}
	if len(excerpt) > historyExcerptLen {
		// Back the cut off to a rune boundary so the excerpt stays valid UTF-8.
		cut := historyExcerptLen
		for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
			cut--
		}
		excerpt = excerpt[:cut] + "..."
	}
	return domain.AnalysisRecord{
		DocumentName: docName,
		Perspective:  r.Perspective,
		Model:        r.Model,
		Status:       status,
		Excerpt:      excerpt,
		CreatedAt:    r.CreatedAt,
	}
}
