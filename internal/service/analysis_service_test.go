package service_test

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/domain"
	"resumelens/internal/port"
	"resumelens/internal/service"
	"resumelens/internal/settings"
)

var validConfig = domain.APIConfig{
	BaseURL:     "https://api.example.com/v1",
	APIKey:      "sk-test",
	Model:       "gpt-4o-mini",
	Temperature: 0.7,
	MaxTokens:   4096,
}

func newStoreWith(t *testing.T, cfg domain.APIConfig) *settings.FileStore {
	t.Helper()
	store, err := settings.NewFileStore(t.TempDir(), cfg)
	require.NoError(t, err)
	return store
}

func newLoadedDocs(t *testing.T, text string) service.DocumentService {
	t.Helper()
	ext := &stubExtractor{out: &port.ExtractOutput{Text: text, PageCount: 1}}
	docs := service.NewDocumentService(ext, testMaxBytes)
	_, err := docs.Upload(service.UploadDocumentInput{FileName: "resume.pdf", FileBytes: pdfBytes})
	require.NoError(t, err)
	return docs
}

func TestAnalyze_RendersPromptAndStoresResult(t *testing.T) {
	docs := newLoadedDocs(t, "the résumé body")
	store := newStoreWith(t, validConfig)
	client := &stubClient{result: domain.AnalysisResult{Content: "looks good", Model: "gpt-4o-mini", CreatedAt: time.Now()}}
	svc := service.NewAnalysisService(docs, store, client)

	result, err := svc.Analyze(context.Background(), service.AnalyzeInput{Perspective: domain.PerspectiveInterviewee})
	require.NoError(t, err)
	assert.Equal(t, "looks good", result.Content)
	assert.Equal(t, domain.PerspectiveInterviewee, result.Perspective)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "the résumé body")
	require.Len(t, client.configs, 1)
	assert.Equal(t, validConfig, client.configs[0])

	stored, err := svc.Result(domain.PerspectiveInterviewee)
	require.NoError(t, err)
	assert.Equal(t, "looks good", stored.Content)
	assert.Equal(t, domain.AnalysisStatusCompleted, svc.Status(domain.PerspectiveInterviewee))
}

func TestAnalyze_PromptOverrideIsUsed(t *testing.T) {
	docs := newLoadedDocs(t, "body")
	store := newStoreWith(t, validConfig)
	client := &stubClient{result: domain.AnalysisResult{Content: "ok"}}
	svc := service.NewAnalysisService(docs, store, client)

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{
		Perspective:    domain.PerspectiveInterviewer,
		PromptOverride: "custom: {{resume}}",
	})
	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	assert.Equal(t, "custom: body", client.prompts[0])
}

func TestAnalyze_RequiresDocument(t *testing.T) {
	ext := &stubExtractor{}
	docs := service.NewDocumentService(ext, testMaxBytes)
	store := newStoreWith(t, validConfig)
	svc := service.NewAnalysisService(docs, store, &stubClient{})

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{Perspective: domain.PerspectiveInterviewee})
	assert.ErrorIs(t, err, domain.ErrNoDocument)
}

func TestAnalyze_RequiresValidConfig(t *testing.T) {
	docs := newLoadedDocs(t, "body")
	incomplete := validConfig
	incomplete.APIKey = ""
	store := newStoreWith(t, incomplete)
	client := &stubClient{}
	svc := service.NewAnalysisService(docs, store, client)

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{Perspective: domain.PerspectiveInterviewee})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Empty(t, client.prompts, "no request may be dispatched with invalid config")
}

func TestAnalyze_RejectsUnknownPerspective(t *testing.T) {
	docs := newLoadedDocs(t, "body")
	store := newStoreWith(t, validConfig)
	svc := service.NewAnalysisService(docs, store, &stubClient{})

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{Perspective: "observer"})
	assert.ErrorIs(t, err, domain.ErrInvalidPerspective)
}

func TestAnalyze_DuplicateTriggerWhileInFlightIsRejected(t *testing.T) {
	docs := newLoadedDocs(t, "body")
	store := newStoreWith(t, validConfig)
	client := &stubClient{
		result: domain.AnalysisResult{Content: "done"},
		block:  make(chan struct{}),
	}
	svc := service.NewAnalysisService(docs, store, client)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Analyze(context.Background(), service.AnalyzeInput{Perspective: domain.PerspectiveInterviewee})
		firstDone <- err
	}()

	// Wait for the first request to be in flight.
	require.Eventually(t, func() bool {
		return svc.Status(domain.PerspectiveInterviewee) == domain.AnalysisStatusRequesting
	}, time.Second, 5*time.Millisecond)

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{Perspective: domain.PerspectiveInterviewee})
	assert.ErrorIs(t, err, domain.ErrAnalysisInFlight)

	close(client.block)
	require.NoError(t, <-firstDone)
	assert.Equal(t, domain.AnalysisStatusCompleted, svc.Status(domain.PerspectiveInterviewee))
}

func TestAnalyze_PerspectiveResultsAreIndependent(t *testing.T) {
	docs := newLoadedDocs(t, "body")
	store := newStoreWith(t, validConfig)
	client := &stubClient{result: domain.AnalysisResult{Content: "candidate feedback"}}
	svc := service.NewAnalysisService(docs, store, client)

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{Perspective: domain.PerspectiveInterviewee})
	require.NoError(t, err)

	client.result = domain.AnalysisResult{Error: "rate limited"}
	_, err = svc.Analyze(context.Background(), service.AnalyzeInput{Perspective: domain.PerspectiveInterviewer})
	require.NoError(t, err)

	interviewee, err := svc.Result(domain.PerspectiveInterviewee)
	require.NoError(t, err)
	assert.Equal(t, "candidate feedback", interviewee.Content)
	assert.Empty(t, interviewee.Error)

	interviewer, err := svc.Result(domain.PerspectiveInterviewer)
	require.NoError(t, err)
	assert.Equal(t, "rate limited", interviewer.Error)
	assert.Empty(t, interviewer.Content)

	assert.Equal(t, domain.AnalysisStatusCompleted, svc.Status(domain.PerspectiveInterviewee))
	assert.Equal(t, domain.AnalysisStatusFailed, svc.Status(domain.PerspectiveInterviewer))
}

func TestResult_NotYetRun(t *testing.T) {
	docs := newLoadedDocs(t, "body")
	store := newStoreWith(t, validConfig)
	svc := service.NewAnalysisService(docs, store, &stubClient{})

	_, err := svc.Result(domain.PerspectiveInterviewer)
	assert.ErrorIs(t, err, domain.ErrNoResult)
	assert.Equal(t, domain.AnalysisStatusIdle, svc.Status(domain.PerspectiveInterviewer))
}

func TestHistory_RecordsRunsInSettleOrder(t *testing.T) {
	docs := newLoadedDocs(t, "body")
	store := newStoreWith(t, validConfig)
	client := &stubClient{result: domain.AnalysisResult{Content: strings.Repeat("x", 300), Model: "gpt-4o-mini"}}
	svc := service.NewAnalysisService(docs, store, client)

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{Perspective: domain.PerspectiveInterviewee})
	require.NoError(t, err)

	client.result = domain.AnalysisResult{Error: "boom"}
	_, err = svc.Analyze(context.Background(), service.AnalyzeInput{Perspective: domain.PerspectiveInterviewer})
	require.NoError(t, err)

	history := svc.History()
	require.Len(t, history, 2)

	assert.Equal(t, "ok", history[0].Status)
	assert.Equal(t, domain.PerspectiveInterviewee, history[0].Perspective)
	assert.Len(t, history[0].Excerpt, 203, "long content is excerpted")
	assert.True(t, strings.HasSuffix(history[0].Excerpt, "..."))

	assert.Equal(t, "error", history[1].Status)
	assert.Equal(t, "boom", history[1].Excerpt)
	assert.Equal(t, "resume.pdf", history[1].DocumentName)
}

func TestHistory_ExcerptCutsOnRuneBoundary(t *testing.T) {
	docs := newLoadedDocs(t, "body")
	store := newStoreWith(t, validConfig)
	// A two-byte rune straddles the cut: 199 ASCII bytes then "é" repeated.
	content := strings.Repeat("x", 199) + strings.Repeat("é", 10)
	client := &stubClient{result: domain.AnalysisResult{Content: content}}
	svc := service.NewAnalysisService(docs, store, client)

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{Perspective: domain.PerspectiveInterviewee})
	require.NoError(t, err)

	history := svc.History()
	require.Len(t, history, 1)

	excerpt := history[0].Excerpt
	assert.True(t, utf8.ValidString(excerpt), "excerpt must not end in a split rune")
	assert.Equal(t, strings.Repeat("x", 199)+"...", excerpt)
}
