// Package pipeline wires upload validation, extraction, segmentation,
// mapping, and validation into the single-file and batch parsing flows.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/resume-importer/internal/extraction"
	"github.com/jonathan/resume-importer/internal/mapping"
	"github.com/jonathan/resume-importer/internal/segmentation"
	"github.com/jonathan/resume-importer/internal/types"
	"github.com/jonathan/resume-importer/internal/upload"
	"github.com/jonathan/resume-importer/internal/validation"
)

// DefaultFileTimeout bounds the wall-clock time spent on one file during
// batch parsing.
const DefaultFileTimeout = 5 * time.Second

// FileValidator checks an upload before any content is read.
type FileValidator interface {
	Validate(file types.FileUpload) error
	SupportedFileTypes() []string
	IsSupportedFileType(mimetype string) bool
}

// ContentExtractor turns a validated upload into raw text.
type ContentExtractor interface {
	ExtractContent(file types.FileUpload) (string, error)
}

// SectionSegmenter splits raw text into sections plus the header region.
type SectionSegmenter interface {
	Segment(rawText string, override map[string]types.SectionType) ([]types.RawSection, string)
}

// ContentMapper converts sections and the header into typed resume data.
type ContentMapper interface {
	Map(headerText string, sections []types.RawSection, rawText string) mapping.Output
}

// ResumeValidator checks mapped resume data and scores it.
type ResumeValidator interface {
	ValidateResumeData(data *types.ResumeData) validation.Result
}

// Parser runs the parsing pipeline. Collaborators are injected explicitly so
// tests can substitute any stage.
type Parser struct {
	validator       FileValidator
	extractor       ContentExtractor
	segmenter       SectionSegmenter
	mapper          ContentMapper
	resumeValidator ResumeValidator

	// FileTimeout bounds per-file wall-clock time in batch parsing.
	FileTimeout time.Duration
}

// New creates a parser from explicit collaborators.
func New(validator FileValidator, extractor ContentExtractor, segmenter SectionSegmenter, mapper ContentMapper, resumeValidator ResumeValidator) *Parser {
	return &Parser{
		validator:       validator,
		extractor:       extractor,
		segmenter:       segmenter,
		mapper:          mapper,
		resumeValidator: resumeValidator,
		FileTimeout:     DefaultFileTimeout,
	}
}

// NewDefault creates a parser wired with the production stage implementations.
func NewDefault() *Parser {
	return New(
		upload.NewValidator(),
		extraction.NewExtractor(),
		segmentation.NewSegmenter(),
		mapping.NewMapper(),
		validation.New(),
	)
}

// ParseResume runs the full pipeline for one file. Expected failures are
// represented in the returned ParseResult, never as panics: upload and
// extraction problems short-circuit with a failure result, while mapping and
// validation problems accumulate as field errors and warnings.
func (p *Parser) ParseResume(ctx context.Context, file types.FileUpload, opts types.ParseOptions) types.ParseResult {
	if err := opts.Validate(); err != nil {
		return failureResult("options", err.Error())
	}

	if err := p.validator.Validate(file); err != nil {
		return failureResult("file", err.Error())
	}
	if err := ctx.Err(); err != nil {
		return failureResult("file", "parsing cancelled: "+err.Error())
	}

	rawText, err := p.extractor.ExtractContent(file)
	if err != nil {
		return failureResult("file", err.Error())
	}
	if err := ctx.Err(); err != nil {
		return failureResult("file", "parsing cancelled: "+err.Error())
	}

	sections, headerText := p.segmenter.Segment(rawText, opts.SectionMapping)
	mapped := p.mapper.Map(headerText, sections, rawText)

	validated := p.resumeValidator.ValidateResumeData(&mapped.ResumeData)

	result := types.ParseResult{
		Data:       &mapped.ResumeData,
		Errors:     append(mapped.Errors, dedupeFieldErrors(mapped.Errors, validated.Errors)...),
		Warnings:   append(mapped.Warnings, validated.Warnings...),
		Confidence: (mapped.Confidence + validated.Confidence) / 2,
	}

	meetsThreshold := result.Confidence >= opts.ConfidenceThreshold
	passesStrict := !opts.StrictValidation || len(result.Errors) == 0
	result.Success = meetsThreshold && passesStrict

	// A rejection caused only by the threshold is distinguishable from a
	// structural one: the caller may still offer to import the attached data.
	if !meetsThreshold && passesStrict {
		result.Errors = append(result.Errors, types.FieldError{
			Field: "confidence",
			Message: fmt.Sprintf("parse confidence %.2f is below the required threshold %.2f",
				result.Confidence, opts.ConfidenceThreshold),
		})
	}

	if opts.IncludeRawText {
		result.RawText = rawText
	}

	return result
}

// Stats derives summary statistics from a parse result.
func (p *Parser) Stats(result types.ParseResult) types.ParsingStats {
	stats := types.ParsingStats{
		Confidence:    result.Confidence,
		ErrorsCount:   len(result.Errors),
		WarningsCount: len(result.Warnings),
	}
	if result.Data != nil {
		stats.SectionsFound = len(result.Data.Sections)
		stats.Completeness = validation.FieldCompleteness(result.Data.PersonalInfo)
	}
	return stats
}

// SupportedFileTypes returns the accepted upload mimetypes.
func (p *Parser) SupportedFileTypes() []string {
	return p.validator.SupportedFileTypes()
}

// IsSupportedFileType reports whether mimetype is accepted.
func (p *Parser) IsSupportedFileType(mimetype string) bool {
	return p.validator.IsSupportedFileType(mimetype)
}

// DefaultParseOptions returns the default parsing options.
func (p *Parser) DefaultParseOptions() types.ParseOptions {
	return types.DefaultParseOptions()
}

// failureResult builds a terminal failure with a single field error.
func failureResult(field, message string) types.ParseResult {
	return types.ParseResult{
		Success: false,
		Errors:  []types.FieldError{{Field: field, Message: message}},
	}
}

// dedupeFieldErrors returns the entries of extra whose field is not already
// reported in base, so mapper and validator errors about the same missing
// field do not double up.
func dedupeFieldErrors(base, extra []types.FieldError) []types.FieldError {
	seen := make(map[string]bool, len(base))
	for _, e := range base {
		seen[e.Field] = true
	}
	var out []types.FieldError
	for _, e := range extra {
		if seen[e.Field] {
			continue
		}
		out = append(out, e)
	}
	return out
}
