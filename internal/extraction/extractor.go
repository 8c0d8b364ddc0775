// Package extraction converts validated binary resume buffers into raw text.
//
// Extraction is a pure transform: the same bytes always produce the same
// text. Bullet markers and irregular whitespace from the source format are
// preserved verbatim; normalization is the segmenter's job.
package extraction

import (
	"strings"

	"github.com/jonathan/resume-importer/internal/types"
	"github.com/jonathan/resume-importer/internal/upload"
)

// Extractor converts a validated FileUpload into raw text.
type Extractor struct{}

// NewExtractor creates a content extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent decodes the buffer according to the declared mimetype and
// returns the raw text. It fails with *ExtractionError when the buffer cannot
// be decoded or when extraction yields an empty string.
func (e *Extractor) ExtractContent(file types.FileUpload) (string, error) {
	var text string
	var err error

	switch file.Mimetype {
	case upload.MimetypePDF:
		text, err = extractPDF(file.Buffer)
	case upload.MimetypeDocx:
		text, err = extractDocx(file.Buffer)
	case upload.MimetypeDoc:
		text, err = extractDoc(file.Buffer)
	default:
		return "", &ExtractionError{
			Filename: file.Filename,
			Message:  "no extractor for mimetype " + file.Mimetype,
		}
	}

	if err != nil {
		if extErr, ok := err.(*ExtractionError); ok {
			extErr.Filename = file.Filename
			return "", extErr
		}
		return "", &ExtractionError{Filename: file.Filename, Message: "extraction failed", Cause: err}
	}

	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Filename: file.Filename, Message: "extracted text is empty"}
	}

	return text, nil
}
