package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// extractDocx reads paragraph text in document order from the
// word/document.xml entry of the OOXML ZIP archive.
func extractDocx(buf []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to open DOCX archive", Cause: err}
	}

	var docFile *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", &ExtractionError{Message: "word/document.xml not found in archive"}
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", &ExtractionError{Message: "failed to open document.xml", Cause: err}
	}
	defer func() { _ = rc.Close() }()

	return decodeDocumentXML(rc)
}

// decodeDocumentXML streams through document.xml collecting the text of each
// w:p paragraph as one line. Tabs and explicit breaks inside a paragraph are
// kept so the segmenter sees the author's layout.
func decodeDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	var paragraph strings.Builder
	inParagraph := false
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &ExtractionError{Message: "malformed document.xml", Cause: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				paragraph.Reset()
			case "t":
				inText = inParagraph
			case "tab":
				if inParagraph {
					paragraph.WriteString("\t")
				}
			case "br":
				if inParagraph {
					paragraph.WriteString("\n")
				}
			}

		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph {
					sb.WriteString(paragraph.String())
					sb.WriteString("\n")
					inParagraph = false
				}
			}
		}
	}

	return sb.String(), nil
}
