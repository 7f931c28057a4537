package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resumelens/internal/domain"
)

const emptyResponseMessage = "empty response from API"

// Client performs a single call to an OpenAI-compatible chat-completions
// endpoint. It implements port.AnalysisClient: Analyze never returns a Go
// error, every failure settles into the result value.
type Client struct {
	client *http.Client
}

// NewClient creates an analysis client. A timeout of 0 defaults to 120s.
func NewClient(timeoutSecs int) *Client {
	timeout := time.Duration(timeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		client: &http.Client{Timeout: timeout},
	}
}

// apiResponse models the chat-completions success body.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// apiErrorResponse models the best-effort error body shape.
type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Analyze sends the prompt to {cfg.BaseURL}/chat/completions and settles the
// outcome into an AnalysisResult. Exactly one request is issued; there is no
// retry and no cancellation beyond the passed context.
func (c *Client) Analyze(ctx context.Context, prompt string, cfg domain.APIConfig) domain.AnalysisResult {
	result := domain.AnalysisResult{
		Model:     cfg.Model,
		CreatedAt: time.Now().UTC(),
	}

	endpoint := strings.TrimSuffix(cfg.BaseURL, "/") + "/chat/completions"

	reqBody := map[string]interface{}{
		"model": cfg.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": cfg.Temperature,
		"max_tokens":  cfg.MaxTokens,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		result.Error = failureMessage(err)
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		result.Error = failureMessage(err)
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		result.Error = failureMessage(err)
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Error = failureMessage(err)
		return result
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result.Error = errorMessageFromBody(respBody, resp.StatusCode)
		return result
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		result.Error = failureMessage(fmt.Errorf("unmarshaling response: %w", err))
		return result
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		result.Error = emptyResponseMessage
		return result
	}

	result.Content = parsed.Choices[0].Message.Content
	return result
}

// errorMessageFromBody decodes the structured error message from a non-2xx
// body, falling back to the numeric status and status text.
func errorMessageFromBody(body []byte, statusCode int) string {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return fmt.Sprintf("API request failed: %d %s", statusCode, http.StatusText(statusCode))
}

func failureMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "unknown error"
	}
	return err.Error()
}
