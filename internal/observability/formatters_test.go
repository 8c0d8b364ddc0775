package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-importer/internal/types"
)

func TestPrintParseResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.ParseResult{
		Success:    true,
		Confidence: 0.82,
		Data: &types.ResumeData{
			PersonalInfo: types.PersonalInfo{
				FullName: "John Doe",
				Email:    "john.doe@example.com",
			},
			Sections: []types.ResumeSection{
				{Type: types.SectionExperience, Title: "Experience", Items: []types.SectionItem{
					types.ExperienceItem{Title: "Engineer"},
				}},
			},
		},
		Warnings: []string{"No phone number found"},
	}

	p.PrintParseResult("resume.docx", result)
	out := buf.String()

	assert.Contains(t, out, "PARSE RESULT")
	assert.Contains(t, out, "resume.docx")
	assert.Contains(t, out, "Status:     OK")
	assert.Contains(t, out, "Confidence: 0.82")
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "Experience (experience, 1 items)")
	assert.Contains(t, out, "No phone number found")
}

func TestPrintParseResultFailure(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.ParseResult{
		Errors: []types.FieldError{{Field: "file", Message: "Unsupported file type"}},
	}

	p.PrintParseResult("resume.txt", result)
	out := buf.String()

	assert.Contains(t, out, "Status:     FAILED")
	assert.Contains(t, out, "file: Unsupported file type")
}

func TestPrintParseResultTruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.ParseResult{}
	for i := 0; i < 8; i++ {
		result.Warnings = append(result.Warnings, fmt.Sprintf("warning %d", i))
	}

	p.PrintParseResult("resume.docx", result)
	out := buf.String()

	assert.Contains(t, out, "warning 4")
	assert.NotContains(t, out, "warning 5")
	assert.Contains(t, out, "... and 3 more")
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStats(types.ParsingStats{
		Confidence:    0.75,
		SectionsFound: 3,
		ErrorsCount:   1,
		WarningsCount: 2,
		Completeness:  0.56,
	})
	out := buf.String()

	assert.Contains(t, out, "PARSING STATS")
	assert.Contains(t, out, "Confidence:    0.75")
	assert.Contains(t, out, "Sections:      3")
	assert.Contains(t, out, "Completeness:  0.56")
}

func TestPrintBoxBorders(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStats(types.ParsingStats{})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "└"))
}
