package service

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"resumelens/internal/domain"
	"resumelens/internal/extractor"
	"resumelens/internal/port"
)

// UploadDocumentInput is the DTO for document upload requests.
type UploadDocumentInput struct {
	FileName     string
	DeclaredType string
	FileBytes    []byte
}

// DocumentService owns the session's single active-document slot. A new
// upload replaces the slot wholesale; an extraction failure clears it so the
// caller must re-upload.
type DocumentService interface {
	Upload(input UploadDocumentInput) (*domain.ParsedDocument, error)
	Active() (*domain.ParsedDocument, error)
	Clear()
}

type documentService struct {
	extractor port.TextExtractor
	maxBytes  int64

	mu     sync.RWMutex
	active *domain.ParsedDocument
}

// NewDocumentService creates a DocumentService with the given upload size
// ceiling in bytes.
func NewDocumentService(ext port.TextExtractor, maxBytes int64) DocumentService {
	return &documentService{extractor: ext, maxBytes: maxBytes}
}

func (s *documentService) Upload(input UploadDocumentInput) (*domain.ParsedDocument, error) {
	// Type and size pre-checks happen before the extractor is invoked;
	// failing them is a caller error, not an extraction failure.
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.FileName), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if input.DeclaredType != "" {
		if _, ok := domain.AllowedContentTypes[input.DeclaredType]; !ok {
			return nil, domain.ErrUnsupportedFileType
		}
	}
	if int64(len(input.FileBytes)) > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic-byte sniff so a renamed file doesn't slip past the extension check.
	sniffLen := len(input.FileBytes)
	if sniffLen > 512 {
		sniffLen = 512
	}
	detected := http.DetectContentType(input.FileBytes[:sniffLen])
	if detected != domain.AllowedFileTypes[fileType] {
		return nil, domain.ErrUnsupportedFileType
	}

	out, err := s.extractor.Extract(port.ExtractInput{
		FileBytes:   input.FileBytes,
		FileName:    input.FileName,
		ContentType: domain.AllowedFileTypes[fileType],
	})
	if err != nil {
		log.Printf("documentService.Upload: extraction failed for %s: %v", input.FileName, err)
		s.Clear()
		var formatErr *extractor.FormatError
		if errors.As(err, &formatErr) {
			return nil, err
		}
		return nil, fmt.Errorf("extracting document text: %w", err)
	}

	doc := &domain.ParsedDocument{
		ID:         uuid.New(),
		FileName:   input.FileName,
		Text:       out.Text,
		PreviewURI: out.PreviewURI,
		PageCount:  out.PageCount,
		SizeBytes:  int64(len(input.FileBytes)),
		UploadedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.active = doc
	s.mu.Unlock()

	log.Printf("documentService.Upload: loaded %s (%d pages, %d bytes)", doc.FileName, doc.PageCount, doc.SizeBytes)
	return doc, nil
}

func (s *documentService) Active() (*domain.ParsedDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil, domain.ErrNoDocument
	}
	return s.active, nil
}

func (s *documentService) Clear() {
	s.mu.Lock()
	s.active = nil
	s.mu.Unlock()
}
