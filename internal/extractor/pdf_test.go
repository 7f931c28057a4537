package extractor_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/extractor"
	"resumelens/internal/port"
)

// buildPDF assembles a minimal single-font PDF with one page per entry in
// pageLines, computing the xref table from the real byte offsets.
func buildPDF(t *testing.T, pageLines []string) []byte {
	t.Helper()

	numPages := len(pageLines)
	// Object layout: 1 catalog, 2 pages, 3 font, then per page: page object
	// followed by its content stream.
	kids := make([]string, 0, numPages)
	for i := 0; i < numPages; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+i*2))
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), numPages),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}
	for i, line := range pageLines {
		pageObj := fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			5+i*2)
		objects = append(objects, pageObj)

		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", line)
		contentObj := fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream)
		objects = append(objects, contentObj)
	}

	var buf strings.Builder
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)

	return []byte(buf.String())
}

func TestExtract_SinglePage(t *testing.T) {
	data := buildPDF(t, []string{"Hello resume"})

	e := extractor.NewPDFExtractor()
	out, err := e.Extract(port.ExtractInput{
		FileBytes:   data,
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 1, out.PageCount)
	assert.Contains(t, out.Text, "Hello")
	assert.Contains(t, out.Text, "resume")
	assert.Equal(t, out.Text, strings.TrimSpace(out.Text))
}

func TestExtract_MultiPage_JoinsPagesWithBlankLine(t *testing.T) {
	data := buildPDF(t, []string{"First page", "Second page"})

	e := extractor.NewPDFExtractor()
	out, err := e.Extract(port.ExtractInput{FileBytes: data})

	require.NoError(t, err)
	assert.Equal(t, 2, out.PageCount)
	assert.Contains(t, out.Text, "First")
	assert.Contains(t, out.Text, "Second")

	// Pages are separated by a blank line and ordered 1..N.
	first := strings.Index(out.Text, "First")
	second := strings.Index(out.Text, "Second")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	assert.Contains(t, out.Text, "\n\n")
}

func TestExtract_PreviewURIEmbedsOriginalBytes(t *testing.T) {
	data := buildPDF(t, []string{"Hello"})

	e := extractor.NewPDFExtractor()
	out, err := e.Extract(port.ExtractInput{FileBytes: data})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.PreviewURI, "data:application/pdf;base64,"))
	assert.Greater(t, len(out.PreviewURI), len("data:application/pdf;base64,"))
}

func TestExtract_InvalidPayload_ReturnsFormatError(t *testing.T) {
	e := extractor.NewPDFExtractor()

	for _, payload := range [][]byte{
		[]byte("this is not a pdf"),
		[]byte("%PDF-1.4\ngarbage without structure"),
		{},
	} {
		out, err := e.Extract(port.ExtractInput{FileBytes: payload})
		require.Error(t, err)
		assert.Nil(t, out)

		var formatErr *extractor.FormatError
		assert.ErrorAs(t, err, &formatErr)
	}
}
