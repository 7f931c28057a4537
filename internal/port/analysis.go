package port

import (
	"context"

	"resumelens/internal/domain"
)

// AnalysisClient abstracts a single call to a chat-completion endpoint.
// Analyze never returns a Go error: every failure mode settles into the
// result value's Error field so callers only branch on content vs error.
type AnalysisClient interface {
	Analyze(ctx context.Context, prompt string, cfg domain.APIConfig) domain.AnalysisResult
}
