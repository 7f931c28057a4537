package domain

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrNoDocument          = errors.New("no document loaded")
	ErrInvalidConfig       = errors.New("api configuration is incomplete or invalid")
	ErrInvalidPerspective  = errors.New("unknown analysis perspective")
	ErrAnalysisInFlight    = errors.New("analysis already in progress for this perspective")
	ErrNoResult            = errors.New("no analysis result available")
)
