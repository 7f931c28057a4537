package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParsedDocument holds the extracted content of the session's active résumé.
// It is created once per successful extraction and replaced wholesale when a
// new file is loaded; fields are never updated in place.
type ParsedDocument struct {
	ID         uuid.UUID `json:"id"`
	FileName   string    `json:"file_name"`
	Text       string    `json:"text"`
	PreviewURI string    `json:"preview_uri"`
	PageCount  int       `json:"page_count"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// APIConfig holds the user-supplied chat-completion endpoint settings.
type APIConfig struct {
	BaseURL     string  `json:"base_url"`
	APIKey      string  `json:"api_key"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// PromptTemplates holds the per-perspective prompt templates. Each template
// is expected to contain exactly one {{resume}} placeholder.
type PromptTemplates struct {
	Interviewee string `json:"interviewee"`
	Interviewer string `json:"interviewer"`
}

// ForPerspective returns the template for the given perspective.
func (t PromptTemplates) ForPerspective(p Perspective) string {
	if p == PerspectiveInterviewer {
		return t.Interviewer
	}
	return t.Interviewee
}

// AnalysisResult is the settled outcome of one analysis request. Exactly one
// of Content (non-empty) or Error is meaningful; the not-yet-run state is the
// absence of a result, not a zero value.
type AnalysisResult struct {
	Perspective Perspective `json:"perspective"`
	Content     string      `json:"content"`
	Error       string      `json:"error,omitempty"`
	Model       string      `json:"model,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OK reports whether the result settled with content rather than an error.
func (r AnalysisResult) OK() bool {
	return r.Error == "" && r.Content != ""
}

// AnalysisRecord is one row of the session's analysis history, kept for
// spreadsheet export.
type AnalysisRecord struct {
	DocumentName string      `json:"document_name"`
	Perspective  Perspective `json:"perspective"`
	Model        string      `json:"model"`
	Status       string      `json:"status"`
	Excerpt      string      `json:"excerpt"`
	CreatedAt    time.Time   `json:"created_at"`
}
