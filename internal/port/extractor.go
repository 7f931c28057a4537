package port

// ExtractInput carries the raw file data handed to a text extractor. The
// caller is responsible for type and size pre-checks; the extractor only
// decodes.
type ExtractInput struct {
	FileBytes   []byte
	FileName    string
	ContentType string
}

// ExtractOutput contains the decoded document content.
type ExtractOutput struct {
	Text       string
	PreviewURI string
	PageCount  int
}

// TextExtractor abstracts paginated-document text extraction.
type TextExtractor interface {
	Extract(input ExtractInput) (*ExtractOutput, error)
}
