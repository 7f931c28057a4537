package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumelens/internal/domain"
	"resumelens/internal/export"
	"resumelens/internal/service"
)

// AnalysisHandler handles analysis trigger, result and export endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// analyzeRequest is the optional JSON body for an analysis trigger.
type analyzeRequest struct {
	PromptOverride string `json:"prompt_override"`
}

// analysisView decorates a result with its slot status.
type analysisView struct {
	Status domain.AnalysisStatus  `json:"status"`
	Result *domain.AnalysisResult `json:"result,omitempty"`
}

// Analyze handles POST /api/v1/analyses/:perspective
// @Summary Run an analysis for one perspective
// @Description Renders the perspective's prompt against the active document and calls the configured chat-completion endpoint
// @Tags analyses
// @Accept json
// @Produce json
// @Param perspective path string true "interviewee or interviewer"
// @Param body body analyzeRequest false "Optional prompt override"
// @Success 200 {object} APIResponse "Settled analysis result"
// @Failure 400 {object} APIResponse "No document or invalid config"
// @Failure 409 {object} APIResponse "Analysis already in progress"
// @Router /analyses/{perspective} [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	perspective := domain.Perspective(c.Param("perspective"))

	var req analyzeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
			return
		}
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), service.AnalyzeInput{
		Perspective:    perspective,
		PromptOverride: req.PromptOverride,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, analysisView{
		Status: h.analysisService.Status(perspective),
		Result: result,
	})
}

// Get handles GET /api/v1/analyses/:perspective
// @Summary Get the settled result for one perspective
// @Tags analyses
// @Produce json
// @Param perspective path string true "interviewee or interviewer"
// @Success 200 {object} APIResponse "Slot status and result, if any"
// @Router /analyses/{perspective} [get]
func (h *AnalysisHandler) Get(c *gin.Context) {
	perspective := domain.Perspective(c.Param("perspective"))
	if !perspective.Valid() {
		HandleError(c, domain.ErrInvalidPerspective)
		return
	}

	view := analysisView{Status: h.analysisService.Status(perspective)}
	if result, err := h.analysisService.Result(perspective); err == nil {
		view.Result = result
	}
	RespondOK(c, view)
}

// Download handles GET /api/v1/analyses/:perspective/download
// @Summary Download the perspective's analysis content as a text file
// @Tags analyses
// @Produce plain
// @Param perspective path string true "interviewee or interviewer"
// @Success 200 {string} string "Analysis content"
// @Failure 404 {object} APIResponse "No result yet"
// @Router /analyses/{perspective}/download [get]
func (h *AnalysisHandler) Download(c *gin.Context) {
	perspective := domain.Perspective(c.Param("perspective"))
	if !perspective.Valid() {
		HandleError(c, domain.ErrInvalidPerspective)
		return
	}

	result, err := h.analysisService.Result(perspective)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !result.OK() {
		HandleError(c, domain.ErrNoResult)
		return
	}

	filename := fmt.Sprintf("analysis-%s.md", perspective)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(result.Content))
}

// ExportHistory handles GET /api/v1/analyses/export
// @Summary Export the session's analysis history as a spreadsheet
// @Tags analyses
// @Produce octet-stream
// @Success 200 {file} file "xlsx workbook"
// @Router /analyses/export [get]
func (h *AnalysisHandler) ExportHistory(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.WriteHistory(&buf, h.analysisService.History()); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="analysis-history.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
