package domain

// Perspective selects which kind of feedback an analysis produces.
type Perspective string

const (
	// PerspectiveInterviewee critiques the résumé from the candidate's side.
	PerspectiveInterviewee Perspective = "interviewee"
	// PerspectiveInterviewer generates interview questions from the résumé.
	PerspectiveInterviewer Perspective = "interviewer"
)

// Perspectives lists all valid perspectives in display order.
var Perspectives = []Perspective{PerspectiveInterviewee, PerspectiveInterviewer}

// Valid reports whether p is a known perspective.
func (p Perspective) Valid() bool {
	switch p {
	case PerspectiveInterviewee, PerspectiveInterviewer:
		return true
	}
	return false
}

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf": FileTypePDF,
}

// AnalysisStatus represents the lifecycle of one perspective's analysis slot.
type AnalysisStatus string

const (
	AnalysisStatusIdle       AnalysisStatus = "idle"
	AnalysisStatusRequesting AnalysisStatus = "requesting"
	AnalysisStatusCompleted  AnalysisStatus = "completed"
	AnalysisStatusFailed     AnalysisStatus = "failed"
)
