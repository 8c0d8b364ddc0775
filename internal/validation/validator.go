// Package validation checks mapped resume data for structural problems and
// scores how complete and well-recognized the extraction is.
package validation

import (
	"fmt"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-importer/internal/types"
)

// Result is the outcome of validating one mapped resume.
type Result struct {
	IsValid    bool
	Confidence float64
	Errors     []types.FieldError
	Warnings   []string
}

// Validator checks resume data and computes a validation confidence score.
type Validator struct {
	fields *playground.Validate
	scorer Scorer
}

// New creates a validator with the default weighted scorer.
func New() *Validator {
	return NewWithScorer(DefaultScorer())
}

// NewWithScorer creates a validator with a custom confidence scorer.
func NewWithScorer(scorer Scorer) *Validator {
	return &Validator{
		fields: playground.New(),
		scorer: scorer,
	}
}

// ValidateResumeData checks required fields, field formats, and section
// structure. Structural problems become Errors; recoverable oddities become
// Warnings. IsValid is true iff Errors is empty.
func (v *Validator) ValidateResumeData(data *types.ResumeData) Result {
	result := Result{}
	if data == nil {
		result.Errors = append(result.Errors, types.FieldError{
			Field:   "data",
			Message: "no resume data to validate",
		})
		return result
	}

	fieldErrors, fieldWarnings := v.validatePersonalInfo(data.PersonalInfo)
	result.Errors = append(result.Errors, fieldErrors...)
	result.Warnings = append(result.Warnings, fieldWarnings...)

	for i, section := range data.Sections {
		path := fmt.Sprintf("sections[%d]", i)
		if section.Items == nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s %q has no items", path, section.Title))
		}
		if !types.IsKnownSectionType(section.Type) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s has unrecognized type %q", path, section.Type))
		}
		if section.Type == types.SectionCustom && section.Title == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s is a custom section without a title", path))
		}
	}

	if len(data.Sections) == 0 {
		result.Warnings = append(result.Warnings, "resume has no sections")
	}

	result.IsValid = len(result.Errors) == 0
	result.Confidence = v.scorer.Score(data)
	return result
}

// validatePersonalInfo checks the required identity fields and the format of
// the optional contact fields. Format problems on optional links are
// warnings, not errors.
func (v *Validator) validatePersonalInfo(info types.PersonalInfo) ([]types.FieldError, []string) {
	var errs []types.FieldError
	var warnings []string

	if info.FullName == "" {
		errs = append(errs, types.FieldError{
			Field:   "fullName",
			Message: "full name is required",
		})
	}
	if info.Email == "" {
		errs = append(errs, types.FieldError{
			Field:   "email",
			Message: "email address is required",
		})
	} else if err := v.fields.Var(info.Email, "email"); err != nil {
		errs = append(errs, types.FieldError{
			Field:   "email",
			Message: fmt.Sprintf("%q is not a valid email address", info.Email),
		})
	}

	links := []struct{ name, value string }{
		{"linkedin", info.LinkedIn},
		{"github", info.GitHub},
		{"website", info.Website},
	}
	for _, link := range links {
		if link.value == "" {
			continue
		}
		// Extracted links often omit the scheme.
		candidate := link.value
		if !strings.Contains(candidate, "://") {
			candidate = "https://" + candidate
		}
		if err := v.fields.Var(candidate, "url"); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s %q does not look like a valid URL", link.name, link.value))
		}
	}

	return errs, warnings
}
