package settings

import (
	"fmt"
	"net/url"
	"strings"

	"resumelens/internal/domain"
)

// ValidateAPIConfig checks configuration completeness before an analysis
// call is allowed. All failures wrap domain.ErrInvalidConfig with a
// user-facing field message.
func ValidateAPIConfig(cfg domain.APIConfig) error {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return fmt.Errorf("%w: base URL is required", domain.ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return fmt.Errorf("%w: API key is required", domain.ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return fmt.Errorf("%w: model name is required", domain.ErrInvalidConfig)
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base URL is not a valid URL", domain.ErrInvalidConfig)
	}

	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("%w: temperature must be between 0 and 2", domain.ErrInvalidConfig)
	}
	if cfg.MaxTokens < 1 {
		return fmt.Errorf("%w: max tokens must be a positive integer", domain.ErrInvalidConfig)
	}
	return nil
}
