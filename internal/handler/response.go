package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumelens/internal/domain"
	"resumelens/internal/extractor"
	"resumelens/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var formatErr *extractor.FormatError
	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; only PDF is accepted"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrNoDocument):
		return http.StatusBadRequest, "NO_DOCUMENT", "no document loaded; upload a résumé first"
	case errors.Is(err, domain.ErrInvalidConfig):
		return http.StatusBadRequest, "INVALID_CONFIG", err.Error()
	case errors.Is(err, domain.ErrInvalidPerspective):
		return http.StatusBadRequest, "INVALID_PERSPECTIVE", "perspective must be interviewee or interviewer"
	case errors.Is(err, domain.ErrAnalysisInFlight):
		return http.StatusConflict, "ANALYSIS_IN_FLIGHT", "an analysis for this perspective is already in progress"
	case errors.Is(err, domain.ErrNoResult):
		return http.StatusNotFound, "NO_RESULT", "no analysis result for this perspective yet"
	case errors.As(err, &formatErr):
		return http.StatusUnprocessableEntity, "INVALID_DOCUMENT", "document could not be parsed; upload a valid PDF"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log.Printf("[%s] internal error: %v", c.GetString(middleware.RequestIDKey), err)
	}
	RespondError(c, status, code, msg)
}
