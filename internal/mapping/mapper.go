// Package mapping converts raw section blocks and the document header into
// typed resume entities with per-field confidence.
package mapping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-importer/internal/types"
)

// Output is the result of mapping one document.
type Output struct {
	ResumeData      types.ResumeData
	FieldConfidence map[string]float64
	Errors          []types.FieldError
	Warnings        []string
	Confidence      float64
}

// Mapper converts raw sections into typed resume entities.
type Mapper struct {
	fields FieldExtractor
}

// NewMapper creates a mapper with the default regex-based field extractor.
func NewMapper() *Mapper {
	return &Mapper{fields: RegexFieldExtractor{}}
}

// NewMapperWithExtractor creates a mapper with a custom field extractor.
func NewMapperWithExtractor(fields FieldExtractor) *Mapper {
	return &Mapper{fields: fields}
}

// nominalFieldWeight is the content-length weight assigned to a single
// extracted field when aggregating confidence.
const nominalFieldWeight = 20

// confidenceAggregator accumulates a content-length-weighted mean.
// Samples are added in a deterministic order so repeated parses of the same
// input produce the same float result.
type confidenceAggregator struct {
	weightedSum float64
	totalWeight float64
}

func (a *confidenceAggregator) add(confidence float64, weight int) {
	if weight < 1 {
		weight = 1
	}
	a.weightedSum += confidence * float64(weight)
	a.totalWeight += float64(weight)
}

func (a *confidenceAggregator) mean() float64 {
	if a.totalWeight == 0 {
		return 0
	}
	m := a.weightedSum / a.totalWeight
	if m < 0 {
		return 0
	}
	if m > 1 {
		return 1
	}
	return m
}

// Map converts the header region and segmented sections into a ResumeData
// with per-field confidence, field-level errors, and advisory warnings.
func (m *Mapper) Map(headerText string, sections []types.RawSection, rawText string) Output {
	out := Output{FieldConfidence: make(map[string]float64)}
	agg := &confidenceAggregator{}

	out.ResumeData.PersonalInfo = m.mapPersonalInfo(headerText, rawText, &out, agg)
	out.ResumeData.Sections = make([]types.ResumeSection, 0, len(sections))

	for _, raw := range sections {
		section := types.ResumeSection{
			Type:    raw.GuessedType,
			Title:   raw.Title,
			Items:   []types.SectionItem{},
			Visible: true,
			Order:   raw.Order,
		}

		items, itemConfidence, warnings := mapSectionItems(raw)
		section.Items = items
		out.Warnings = append(out.Warnings, warnings...)

		prefix := fmt.Sprintf("sections[%d].", raw.Order)
		for _, key := range sortedKeys(itemConfidence) {
			out.FieldConfidence[prefix+key] = itemConfidence[key]
			agg.add(itemConfidence[key], nominalFieldWeight)
		}
		agg.add(raw.HeadingConfidence, len(raw.RawContent))

		out.ResumeData.Sections = append(out.ResumeData.Sections, section)
	}

	out.Confidence = agg.mean()
	return out
}

// mapPersonalInfo extracts contact fields from the header region. The email
// search widens to the whole document when the header has none, at reduced
// confidence.
func (m *Mapper) mapPersonalInfo(headerText, rawText string, out *Output, agg *confidenceAggregator) types.PersonalInfo {
	info := types.PersonalInfo{}

	name, nameConfidence := m.fields.Name(headerText)
	info.FullName = name
	if name == "" {
		out.Errors = append(out.Errors, types.FieldError{
			Field:   "fullName",
			Message: "Full name could not be extracted from the document header",
		})
	} else {
		out.FieldConfidence["personalInfo.fullName"] = nameConfidence
		agg.add(nameConfidence, len(name))
	}

	email, emailConfidence := m.fields.Email(headerText)
	if email == "" {
		email, emailConfidence = m.fields.Email(rawText)
		emailConfidence *= 0.8
	}
	info.Email = email
	if email == "" {
		out.Errors = append(out.Errors, types.FieldError{
			Field:   "email",
			Message: "Email address could not be extracted",
		})
	} else {
		out.FieldConfidence["personalInfo.email"] = emailConfidence
		agg.add(emailConfidence, len(email))
	}

	phone, phoneConfidence := m.fields.Phone(headerText)
	info.Phone = phone
	if phone == "" {
		out.Warnings = append(out.Warnings, "phone number not found in document header")
	} else {
		out.FieldConfidence["personalInfo.phone"] = phoneConfidence
		agg.add(phoneConfidence, len(phone))
	}

	location, locationConfidence := m.fields.Location(headerText)
	info.Location = location
	if location == "" {
		out.Warnings = append(out.Warnings, "location not found in document header")
	} else {
		out.FieldConfidence["personalInfo.location"] = locationConfidence
		agg.add(locationConfidence, len(location))
	}

	links := m.fields.Links(rawText)
	info.LinkedIn = links.LinkedIn
	info.GitHub = links.GitHub
	info.Website = links.Website

	return info
}

// mapSectionItems dispatches a raw section to its item mapper. The switch is
// exhaustive over the known section types; custom and summary content stays
// freeform.
func mapSectionItems(raw types.RawSection) ([]types.SectionItem, map[string]float64, []string) {
	switch raw.GuessedType {
	case types.SectionExperience:
		return mapExperienceItems(raw.RawContent)
	case types.SectionEducation:
		return mapEducationItems(raw.RawContent)
	case types.SectionSkills:
		return mapSkillsItems(raw.RawContent)
	case types.SectionProjects:
		return mapProjectItems(raw.RawContent)
	case types.SectionCertifications:
		return mapCertificationItems(raw.RawContent)
	case types.SectionSummary, types.SectionCustom:
		return mapFreeformItems(raw.RawContent)
	default:
		return mapFreeformItems(raw.RawContent)
	}
}

// mapCertificationItems emits one freeform item per non-empty line.
func mapCertificationItems(content string) ([]types.SectionItem, map[string]float64, []string) {
	var items []types.SectionItem
	confidence := make(map[string]float64)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(stripBullet(strings.TrimSpace(line)))
		if trimmed == "" {
			continue
		}
		confidence[fmt.Sprintf("items[%d].content", len(items))] = 0.7
		items = append(items, types.CustomItem{Content: trimmed})
	}
	return items, confidence, nil
}

// mapFreeformItems wraps the whole block in a single freeform item.
func mapFreeformItems(content string) ([]types.SectionItem, map[string]float64, []string) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return []types.SectionItem{}, nil, nil
	}
	return []types.SectionItem{types.CustomItem{Content: trimmed}},
		map[string]float64{"items[0].content": 0.6}, nil
}

// sortedKeys returns map keys in lexical order for deterministic aggregation.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
