package types

import "fmt"

// MaxFileSize is the largest upload the pipeline accepts, in bytes (10 MiB).
const MaxFileSize = 10 * 1024 * 1024

// DefaultConfidenceThreshold is the confidence below which a parse is
// reported as a soft failure.
const DefaultConfidenceThreshold = 0.3

// FileUpload is one uploaded resume file. It is owned exclusively by a single
// pipeline invocation and is never mutated.
type FileUpload struct {
	Filename string `json:"filename"`
	Mimetype string `json:"mimetype"`
	Buffer   []byte `json:"-"`
	Size     int64  `json:"size"`
}

// ParseOptions controls parsing behavior for one invocation.
type ParseOptions struct {
	// StrictValidation forces overall failure when any field-level error exists.
	StrictValidation bool `json:"strict_validation"`
	// IncludeRawText attaches the extracted raw text to the result.
	IncludeRawText bool `json:"include_raw_text"`
	// ConfidenceThreshold is the minimum confidence for success, in [0,1].
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	// SectionMapping overrides heading-to-type classification. Keys are
	// matched case-insensitively against detected heading text.
	SectionMapping map[string]SectionType `json:"section_mapping,omitempty"`
}

// DefaultParseOptions returns the options used when the caller supplies none.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		StrictValidation:    false,
		IncludeRawText:      false,
		ConfidenceThreshold: DefaultConfidenceThreshold,
	}
}

// Validate checks option values. A violation is a programmer or configuration
// error, not an expected per-file failure mode.
func (o ParseOptions) Validate() error {
	if o.ConfidenceThreshold < 0 || o.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold must be in [0,1], got %g", o.ConfidenceThreshold)
	}
	for heading, sectionType := range o.SectionMapping {
		if heading == "" {
			return fmt.Errorf("section_mapping contains an empty heading key")
		}
		if !IsKnownSectionType(sectionType) {
			return fmt.Errorf("section_mapping maps %q to unknown section type %q", heading, sectionType)
		}
	}
	return nil
}

// RawSection is one segmented block of raw text with a guessed type.
type RawSection struct {
	GuessedType       SectionType `json:"guessed_type"`
	Title             string      `json:"title"`
	RawContent        string      `json:"raw_content"`
	Order             int         `json:"order"`
	HeadingConfidence float64     `json:"heading_confidence"`
}

// FieldError is a validation or extraction error scoped to a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseResult is the outcome of parsing one file. Expected failures are
// represented here as data rather than returned as Go errors, so a batch can
// carry per-file failures alongside successes.
type ParseResult struct {
	Success    bool         `json:"success"`
	Data       *ResumeData  `json:"data,omitempty"`
	RawText    string       `json:"raw_text,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Warnings   []string     `json:"warnings,omitempty"`
	Confidence float64      `json:"confidence"`
}

// ParsingStats is a read-only summary derived from a ParseResult.
type ParsingStats struct {
	Confidence    float64 `json:"confidence"`
	SectionsFound int     `json:"sections_found"`
	ErrorsCount   int     `json:"errors_count"`
	WarningsCount int     `json:"warnings_count"`
	Completeness  float64 `json:"completeness"`
}
