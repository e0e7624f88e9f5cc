package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTwoPagePDF assembles a minimal two-page PDF with one line of Helvetica
// text per page, computing the xref offsets as objects are written.
func buildTwoPagePDF(t *testing.T, firstPage, secondPage string) []byte {
	t.Helper()

	var buf bytes.Buffer
	offsets := make([]int, 8)

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	contentStream := func(text string) string {
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content)
	}

	buf.WriteString("%PDF-1.4\n")
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 6 0 R >>")
	writeObj(4, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 7 0 R >>")
	writeObj(5, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	writeObj(6, contentStream(firstPage))
	writeObj(7, contentStream(secondPage))

	xrefOffset := buf.Len()
	buf.WriteString("xref\n0 8\n")
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= 7; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 8 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	return buf.Bytes()
}

func TestExtractText_ConcatenatesPageText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, buildTwoPagePDF(t, "Hello", "World"), 0644))

	parser := NewPDFParserService()
	text, err := parser.ExtractText(path)
	require.NoError(t, err)

	// Per-page text joined in page order, nothing in between
	assert.Equal(t, "Hello\nWorld", text)
}

func TestExtractText_UnopenableDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0644))

	parser := NewPDFParserService()
	_, err := parser.ExtractText(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestExtractText_MissingFile(t *testing.T) {
	parser := NewPDFParserService()
	_, err := parser.ExtractText(filepath.Join(t.TempDir(), "does-not-exist.pdf"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}
