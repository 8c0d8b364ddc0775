package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls text out of a PDF buffer page by page, keeping line breaks
// between visual rows. Pages that fail to decode are skipped rather than
// failing the whole document.
func extractPDF(buf []byte) (text string, err error) {
	// The underlying PDF reader panics on some malformed cross-reference
	// tables; a corrupt file must degrade to an ExtractionError.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Message: fmt.Sprintf("corrupt PDF: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to open PDF", Cause: err}
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			// Fall back to plain text for pages where row grouping fails.
			if plain, plainErr := page.GetPlainText(nil); plainErr == nil {
				sb.WriteString(plain)
				sb.WriteString("\n")
			}
			continue
		}

		for _, row := range rows {
			var line strings.Builder
			for _, word := range row.Content {
				line.WriteString(word.S)
			}
			sb.WriteString(line.String())
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
