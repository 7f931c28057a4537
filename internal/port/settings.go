package port

import "resumelens/internal/domain"

// SettingsStore persists the API configuration and the prompt-template pair
// as two independent records. Load returns defaults when no record has been
// saved yet; Save overwrites the whole record; Reset removes the record so
// subsequent loads return defaults again.
type SettingsStore interface {
	LoadAPIConfig() (domain.APIConfig, error)
	SaveAPIConfig(cfg domain.APIConfig) error
	ResetAPIConfig() error

	LoadPromptTemplates() (domain.PromptTemplates, error)
	SavePromptTemplates(t domain.PromptTemplates) error
	ResetPromptTemplate(p domain.Perspective) error
}
