package extraction

import (
	"bytes"
	"io"

	"github.com/richardlehane/mscfb"
)

// extractDoc performs best-effort text recovery from a legacy .doc compound
// file. The WordDocument stream mixes text with binary structures, so the
// stream is scanned for printable runs instead of being fully decoded.
func extractDoc(buf []byte) (string, error) {
	doc, err := mscfb.New(bytes.NewReader(buf))
	if err != nil {
		return "", &ExtractionError{Message: "failed to open compound file", Cause: err}
	}

	var wordStream []byte
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entry.Name != "WordDocument" {
			continue
		}
		data, readErr := io.ReadAll(entry)
		if readErr != nil {
			return "", &ExtractionError{Message: "failed to read WordDocument stream", Cause: readErr}
		}
		wordStream = data
		break
	}

	if wordStream == nil {
		return "", &ExtractionError{Message: "WordDocument stream not found"}
	}

	return printableRuns(wordStream), nil
}

// minRunLength filters out the short printable fragments that binary
// structures produce by coincidence.
const minRunLength = 4

// printableRuns extracts runs of printable text from a binary stream,
// emitting one line per run. Interleaved zero bytes from UTF-16LE encoded
// regions are dropped first so ASCII content in either encoding survives.
func printableRuns(data []byte) string {
	zeros := 0
	for _, b := range data {
		if b == 0 {
			zeros++
		}
	}
	// Mostly zero-interleaved means UTF-16LE text regions dominate.
	if len(data) > 0 && zeros*3 > len(data) {
		compact := make([]byte, 0, len(data)-zeros)
		for _, b := range data {
			if b != 0 {
				compact = append(compact, b)
			}
		}
		data = compact
	}

	var out bytes.Buffer
	var run bytes.Buffer
	flush := func() {
		if run.Len() >= minRunLength {
			out.Write(run.Bytes())
			out.WriteString("\n")
		}
		run.Reset()
	}

	for _, b := range data {
		switch {
		case b == '\r' || b == '\v':
			// Word uses CR for paragraph marks and VT for line breaks.
			flush()
		case b == '\n' || b == '\t' || (b >= 0x20 && b < 0x7f):
			run.WriteByte(b)
		default:
			flush()
		}
	}
	flush()

	return out.String()
}
