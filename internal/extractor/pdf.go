package extractor

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"resumelens/internal/port"
)

// FormatError indicates the payload is not a valid document of the expected
// format. Extraction fails atomically: no partial result accompanies it.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid document format: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// PDFExtractor implements port.TextExtractor for PDF payloads.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract decodes the payload as a PDF, walks every page in order and joins
// the positioned text fragments of each page with single spaces, pages with a
// blank line. The preview URI embeds the original bytes so the caller can
// render the document without re-parsing.
func (e *PDFExtractor) Extract(input port.ExtractInput) (out *port.ExtractOutput, err error) {
	// The underlying reader panics on some malformed documents instead of
	// returning an error; fold those into FormatError as well.
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &FormatError{Err: fmt.Errorf("decoding pdf: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(input.FileBytes), int64(len(input.FileBytes)))
	if err != nil {
		return nil, &FormatError{Err: err}
	}

	pageCount := reader.NumPage()
	pageTexts := make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			return nil, &FormatError{Err: fmt.Errorf("page %d failed to decode", i)}
		}
		text, err := pageText(page)
		if err != nil {
			return nil, &FormatError{Err: fmt.Errorf("page %d: %w", i, err)}
		}
		pageTexts = append(pageTexts, text)
	}

	return &port.ExtractOutput{
		Text:       strings.TrimSpace(strings.Join(pageTexts, "\n\n")),
		PreviewURI: previewURI(input.FileBytes),
		PageCount:  pageCount,
	}, nil
}

// pageText joins a page's text fragments with single spaces.
func pageText(page pdf.Page) (string, error) {
	raw, err := page.GetPlainText(nil)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(raw), " "), nil
}

func previewURI(fileBytes []byte) string {
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(fileBytes)
}
