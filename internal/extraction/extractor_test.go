package extraction

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-importer/internal/types"
	"github.com/jonathan/resume-importer/internal/upload"
)

// buildDocx assembles a minimal OOXML archive whose document.xml holds one
// w:p paragraph per input line.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		fmt.Fprintf(&body, `<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, p)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = entry.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func docxUpload(t *testing.T, paragraphs ...string) types.FileUpload {
	t.Helper()
	buf := buildDocx(t, paragraphs...)
	return types.FileUpload{
		Filename: "resume.docx",
		Mimetype: upload.MimetypeDocx,
		Buffer:   buf,
		Size:     int64(len(buf)),
	}
}

func TestExtractContentDocx(t *testing.T) {
	e := NewExtractor()
	file := docxUpload(t,
		"John Doe",
		"john.doe@example.com",
		"",
		"EXPERIENCE",
		"Software Engineer at Tech Corp",
		"• Developed web applications",
	)

	text, err := e.ExtractContent(file)
	require.NoError(t, err)

	assert.Contains(t, text, "John Doe\n")
	assert.Contains(t, text, "EXPERIENCE\n")
	assert.Contains(t, text, "• Developed web applications")
}

func TestExtractContentDocxPreservesBulletsAndWhitespace(t *testing.T) {
	e := NewExtractor()
	file := docxUpload(t, "Skills:  Go,   Python", "- bullet one", "* bullet two")

	text, err := e.ExtractContent(file)
	require.NoError(t, err)

	// Source formatting passes through verbatim; normalization happens later.
	assert.Contains(t, text, "Skills:  Go,   Python")
	assert.Contains(t, text, "- bullet one")
	assert.Contains(t, text, "* bullet two")
}

func TestExtractContentCorruptDocx(t *testing.T) {
	e := NewExtractor()
	file := types.FileUpload{
		Filename: "broken.docx",
		Mimetype: upload.MimetypeDocx,
		Buffer:   []byte("this is not a zip archive"),
		Size:     25,
	}

	_, err := e.ExtractContent(file)
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "broken.docx", extErr.Filename)
	assert.Contains(t, err.Error(), "Failed to parse resume content")
}

func TestExtractContentCorruptPDF(t *testing.T) {
	e := NewExtractor()
	file := types.FileUpload{
		Filename: "broken.pdf",
		Mimetype: upload.MimetypePDF,
		Buffer:   []byte("%PDF-1.4 truncated garbage"),
		Size:     26,
	}

	_, err := e.ExtractContent(file)
	require.Error(t, err)

	var extErr *ExtractionError
	assert.ErrorAs(t, err, &extErr)
}

func TestExtractContentCorruptDoc(t *testing.T) {
	e := NewExtractor()
	file := types.FileUpload{
		Filename: "broken.doc",
		Mimetype: upload.MimetypeDoc,
		Buffer:   []byte("not a compound file"),
		Size:     19,
	}

	_, err := e.ExtractContent(file)
	require.Error(t, err)

	var extErr *ExtractionError
	assert.ErrorAs(t, err, &extErr)
}

func TestExtractContentEmptyDocument(t *testing.T) {
	e := NewExtractor()
	file := docxUpload(t, "", "", "")

	_, err := e.ExtractContent(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestExtractContentUnknownMimetype(t *testing.T) {
	e := NewExtractor()
	file := types.FileUpload{Filename: "resume.txt", Mimetype: "text/plain", Buffer: []byte("hello"), Size: 5}

	_, err := e.ExtractContent(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text/plain")
}

func TestExtractContentDeterministic(t *testing.T) {
	e := NewExtractor()
	file := docxUpload(t, "John Doe", "EXPERIENCE", "Engineer at Corp")

	first, err := e.ExtractContent(file)
	require.NoError(t, err)
	second, err := e.ExtractContent(file)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
