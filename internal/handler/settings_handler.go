package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumelens/internal/domain"
	"resumelens/internal/port"
	"resumelens/internal/settings"
)

// SettingsHandler handles API config and prompt template endpoints.
type SettingsHandler struct {
	store port.SettingsStore
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(store port.SettingsStore) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// GetAPIConfig handles GET /api/v1/settings/config
// @Summary Get the stored API configuration
// @Tags settings
// @Produce json
// @Success 200 {object} APIResponse "Stored config (defaults when unsaved)"
// @Router /settings/config [get]
func (h *SettingsHandler) GetAPIConfig(c *gin.Context) {
	cfg, err := h.store.LoadAPIConfig()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cfg)
}

// UpdateAPIConfig handles PUT /api/v1/settings/config
// @Summary Save the API configuration
// @Description Validates and persists the endpoint, key, model, temperature and max-token settings
// @Tags settings
// @Accept json
// @Produce json
// @Param body body domain.APIConfig true "API configuration"
// @Success 200 {object} APIResponse "Saved config"
// @Failure 400 {object} APIResponse "Validation failure"
// @Router /settings/config [put]
func (h *SettingsHandler) UpdateAPIConfig(c *gin.Context) {
	var cfg domain.APIConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be a JSON API configuration")
		return
	}
	if err := settings.ValidateAPIConfig(cfg); err != nil {
		HandleError(c, err)
		return
	}
	if err := h.store.SaveAPIConfig(cfg); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cfg)
}

// ResetAPIConfig handles DELETE /api/v1/settings/config
// @Summary Reset the API configuration to defaults
// @Tags settings
// @Produce json
// @Success 200 {object} APIResponse "Defaults after reset"
// @Router /settings/config [delete]
func (h *SettingsHandler) ResetAPIConfig(c *gin.Context) {
	if err := h.store.ResetAPIConfig(); err != nil {
		HandleError(c, err)
		return
	}
	cfg, err := h.store.LoadAPIConfig()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cfg)
}

// GetPrompts handles GET /api/v1/settings/prompts
// @Summary Get the stored prompt templates
// @Tags settings
// @Produce json
// @Success 200 {object} APIResponse "Template pair (defaults when unsaved)"
// @Router /settings/prompts [get]
func (h *SettingsHandler) GetPrompts(c *gin.Context) {
	templates, err := h.store.LoadPromptTemplates()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, templates)
}

// UpdatePrompts handles PUT /api/v1/settings/prompts
// @Summary Save the prompt template pair
// @Tags settings
// @Accept json
// @Produce json
// @Param body body domain.PromptTemplates true "Template pair"
// @Success 200 {object} APIResponse "Saved templates"
// @Router /settings/prompts [put]
func (h *SettingsHandler) UpdatePrompts(c *gin.Context) {
	var templates domain.PromptTemplates
	if err := c.ShouldBindJSON(&templates); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be a JSON template pair")
		return
	}
	if err := h.store.SavePromptTemplates(templates); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, templates)
}

// ResetPrompt handles POST /api/v1/settings/prompts/:perspective/reset
// @Summary Reset one perspective's template to its default
// @Tags settings
// @Produce json
// @Param perspective path string true "interviewee or interviewer"
// @Success 200 {object} APIResponse "Template pair after reset"
// @Failure 400 {object} APIResponse "Unknown perspective"
// @Router /settings/prompts/{perspective}/reset [post]
func (h *SettingsHandler) ResetPrompt(c *gin.Context) {
	perspective := domain.Perspective(c.Param("perspective"))
	if err := h.store.ResetPromptTemplate(perspective); err != nil {
		HandleError(c, err)
		return
	}
	templates, err := h.store.LoadPromptTemplates()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, templates)
}
