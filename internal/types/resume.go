// Package types provides type definitions for structured data used throughout the resume-importer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// SectionType identifies the semantic kind of a resume section.
type SectionType string

// Known section types. Anything the segmenter cannot classify becomes SectionCustom.
const (
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionSkills         SectionType = "skills"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
	SectionSummary        SectionType = "summary"
	SectionCustom         SectionType = "custom"
)

// KnownSectionTypes returns every recognized section type.
func KnownSectionTypes() []SectionType {
	return []SectionType{
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionProjects,
		SectionCertifications,
		SectionSummary,
		SectionCustom,
	}
}

// IsKnownSectionType reports whether t is one of the recognized section types.
func IsKnownSectionType(t SectionType) bool {
	switch t {
	case SectionExperience, SectionEducation, SectionSkills, SectionProjects,
		SectionCertifications, SectionSummary, SectionCustom:
		return true
	}
	return false
}

// PersonalInfo holds contact fields extracted from the document header.
// Only FullName and Email are semantically required.
type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ItemKind discriminates the section item variants on the wire.
type ItemKind string

// Item kinds for the SectionItem union.
const (
	KindExperience ItemKind = "experience"
	KindEducation  ItemKind = "education"
	KindSkills     ItemKind = "skills"
	KindProject    ItemKind = "project"
	KindCustom     ItemKind = "custom"
)

// SectionItem is a closed union over the item variants a resume section can hold.
// The unexported method keeps the union closed to this package.
type SectionItem interface {
	Kind() ItemKind
	sectionItem()
}

// ExperienceItem represents a single work-experience entry.
type ExperienceItem struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date,omitempty"`
	Current     bool     `json:"current,omitempty"`
	Description []string `json:"description"`
}

// EducationItem represents a single education entry.
type EducationItem struct {
	Degree         string `json:"degree"`
	School         string `json:"school"`
	Location       string `json:"location,omitempty"`
	GraduationDate string `json:"graduation_date"`
	GPA            string `json:"gpa,omitempty"`
	Honors         string `json:"honors,omitempty"`
}

// SkillsItem represents one category of skills.
type SkillsItem struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// ProjectItem represents a personal or professional project entry.
type ProjectItem struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
}

// CustomItem carries freeform content for sections with no structured variant.
type CustomItem struct {
	Content string `json:"content"`
}

// Kind implements SectionItem.
func (ExperienceItem) Kind() ItemKind { return KindExperience }

// Kind implements SectionItem.
func (EducationItem) Kind() ItemKind { return KindEducation }

// Kind implements SectionItem.
func (SkillsItem) Kind() ItemKind { return KindSkills }

// Kind implements SectionItem.
func (ProjectItem) Kind() ItemKind { return KindProject }

// Kind implements SectionItem.
func (CustomItem) Kind() ItemKind { return KindCustom }

func (ExperienceItem) sectionItem() {}
func (EducationItem) sectionItem()  {}
func (SkillsItem) sectionItem()     {}
func (ProjectItem) sectionItem()    {}
func (CustomItem) sectionItem()     {}

// ResumeSection is one typed section of the structured resume.
type ResumeSection struct {
	Type    SectionType   `json:"type"`
	Title   string        `json:"title"`
	Items   []SectionItem `json:"items"`
	Visible bool          `json:"visible"`
	Order   int           `json:"order"`
}

// ResumeData is the fully structured resume. It is always present in a
// ParseResult that carries data; absence of content is represented by empty
// strings and empty slices, never by a missing object.
type ResumeData struct {
	PersonalInfo PersonalInfo    `json:"personal_info"`
	Sections     []ResumeSection `json:"sections"`
}

// marshalItem serializes a section item with its kind discriminator spliced in.
func marshalItem(item SectionItem) (json.RawMessage, error) {
	payload, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, err
	}
	fields["kind"] = item.Kind()
	return json.Marshal(fields)
}

// unmarshalItem deserializes a section item by dispatching on its kind field.
func unmarshalItem(raw json.RawMessage) (SectionItem, error) {
	var envelope struct {
		Kind ItemKind `json:"kind"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to read item kind: %w", err)
	}

	switch envelope.Kind {
	case KindExperience:
		var item ExperienceItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, err
		}
		return item, nil
	case KindEducation:
		var item EducationItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, err
		}
		return item, nil
	case KindSkills:
		var item SkillsItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, err
		}
		return item, nil
	case KindProject:
		var item ProjectItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, err
		}
		return item, nil
	case KindCustom:
		var item CustomItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, err
		}
		return item, nil
	default:
		return nil, fmt.Errorf("unknown section item kind %q", envelope.Kind)
	}
}

// MarshalJSON serializes the section with a kind discriminator on every item.
func (s ResumeSection) MarshalJSON() ([]byte, error) {
	items := make([]json.RawMessage, 0, len(s.Items))
	for i, item := range s.Items {
		raw, err := marshalItem(item)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal item %d: %w", i, err)
		}
		items = append(items, raw)
	}

	return json.Marshal(struct {
		Type    SectionType       `json:"type"`
		Title   string            `json:"title"`
		Items   []json.RawMessage `json:"items"`
		Visible bool              `json:"visible"`
		Order   int               `json:"order"`
	}{s.Type, s.Title, items, s.Visible, s.Order})
}

// UnmarshalJSON deserializes the section, reconstructing concrete item types
// from the kind discriminator.
func (s *ResumeSection) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    SectionType       `json:"type"`
		Title   string            `json:"title"`
		Items   []json.RawMessage `json:"items"`
		Visible bool              `json:"visible"`
		Order   int               `json:"order"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	items := make([]SectionItem, 0, len(raw.Items))
	for i, rawItem := range raw.Items {
		item, err := unmarshalItem(rawItem)
		if err != nil {
			return fmt.Errorf("failed to unmarshal item %d: %w", i, err)
		}
		items = append(items, item)
	}

	s.Type = raw.Type
	s.Title = raw.Title
	s.Items = items
	s.Visible = raw.Visible
	s.Order = raw.Order
	return nil
}
