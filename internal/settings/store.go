package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"resumelens/internal/domain"
	"resumelens/internal/prompt"
)

const (
	apiConfigFile = "api_config.json"
	promptsFile   = "prompts.json"
)

// FileStore persists the API configuration and the prompt-template pair as
// two independent JSON records under a state directory. It implements
// port.SettingsStore. Loads fall back to defaults when a record is absent;
// resets remove the record so defaults apply again.
type FileStore struct {
	mu       sync.Mutex
	dir      string
	defaults domain.APIConfig
}

// NewFileStore creates the state directory if needed and returns a store
// seeded with the given API config defaults.
func NewFileStore(dir string, defaults domain.APIConfig) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating settings directory: %w", err)
	}
	return &FileStore{dir: dir, defaults: defaults}, nil
}

// LoadAPIConfig returns the saved API config, or the defaults when none has
// been saved yet.
func (s *FileStore) LoadAPIConfig() (domain.APIConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, apiConfigFile))
	if os.IsNotExist(err) {
		return s.defaults, nil
	}
	if err != nil {
		return domain.APIConfig{}, fmt.Errorf("reading api config: %w", err)
	}

	var cfg domain.APIConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return domain.APIConfig{}, fmt.Errorf("decoding api config: %w", err)
	}
	return cfg, nil
}

// SaveAPIConfig persists the whole record, replacing any previous save.
func (s *FileStore) SaveAPIConfig(cfg domain.APIConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeRecord(apiConfigFile, cfg)
}

// ResetAPIConfig removes the saved record so loads return defaults again.
func (s *FileStore) ResetAPIConfig() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeRecord(apiConfigFile)
}

// LoadPromptTemplates returns the saved template pair. Missing or blank
// fields fall back to the shipped defaults per field.
func (s *FileStore) LoadPromptTemplates() (domain.PromptTemplates, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPromptTemplatesLocked()
}

func (s *FileStore) loadPromptTemplatesLocked() (domain.PromptTemplates, error) {
	defaults := prompt.Defaults()

	data, err := os.ReadFile(filepath.Join(s.dir, promptsFile))
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return domain.PromptTemplates{}, fmt.Errorf("reading prompt templates: %w", err)
	}

	var t domain.PromptTemplates
	if err := json.Unmarshal(data, &t); err != nil {
		return domain.PromptTemplates{}, fmt.Errorf("decoding prompt templates: %w", err)
	}
	if t.Interviewee == "" {
		t.Interviewee = defaults.Interviewee
	}
	if t.Interviewer == "" {
		t.Interviewer = defaults.Interviewer
	}
	return t, nil
}

// SavePromptTemplates persists the whole pair.
func (s *FileStore) SavePromptTemplates(t domain.PromptTemplates) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeRecord(promptsFile, t)
}

// ResetPromptTemplate restores a single perspective's template to its
// default, leaving the other perspective untouched. The load and save happen
// under one lock so a concurrent SavePromptTemplates cannot interleave.
func (s *FileStore) ResetPromptTemplate(p domain.Perspective) error {
	if !p.Valid() {
		return domain.ErrInvalidPerspective
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadPromptTemplatesLocked()
	if err != nil {
		return err
	}

	defaults := prompt.Defaults()
	switch p {
	case domain.PerspectiveInterviewee:
		current.Interviewee = defaults.Interviewee
	case domain.PerspectiveInterviewer:
		current.Interviewer = defaults.Interviewer
	}
	return s.writeRecord(promptsFile, current)
}

func (s *FileStore) writeRecord(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) removeRecord(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", name, err)
	}
	return nil
}
