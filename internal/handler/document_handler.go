package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumelens/internal/service"
)

// DocumentHandler handles résumé upload and active-document endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Upload handles POST /api/v1/documents
// @Summary Upload a résumé
// @Description Upload a résumé PDF (max 10MB) and extract its text
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Résumé PDF"
// @Success 201 {object} APIResponse "Document parsed"
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 422 {object} APIResponse "Document could not be parsed"
// @Router /documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	doc, err := h.documentService.Upload(service.UploadDocumentInput{
		FileName:     header.Filename,
		DeclaredType: header.Header.Get("Content-Type"),
		FileBytes:    fileBytes,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// Get handles GET /api/v1/documents/active
// @Summary Get the active document
// @Tags documents
// @Produce json
// @Success 200 {object} APIResponse "Active document"
// @Failure 400 {object} APIResponse "No document loaded"
// @Router /documents/active [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.documentService.Active()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Delete handles DELETE /api/v1/documents/active
// @Summary Clear the active document
// @Tags documents
// @Produce json
// @Success 200 {object} APIResponse "Cleared"
// @Router /documents/active [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	h.documentService.Clear()
	RespondOK(c, gin.H{"cleared": true})
}
