package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-importer/internal/types"
)

func experienceSection(content string) types.RawSection {
	return types.RawSection{
		GuessedType:       types.SectionExperience,
		Title:             "EXPERIENCE",
		RawContent:        content,
		Order:             0,
		HeadingConfidence: 0.9,
	}
}

func TestMapPersonalInfoFromHeader(t *testing.T) {
	m := NewMapper()
	header := "John Doe\njohn.doe@example.com\n(555) 123-4567\nBoston, MA"

	out := m.Map(header, nil, header)

	info := out.ResumeData.PersonalInfo
	assert.Equal(t, "John Doe", info.FullName)
	assert.Equal(t, "john.doe@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "Boston, MA", info.Location)
	assert.Empty(t, out.Errors)

	assert.InDelta(t, 1.0, out.FieldConfidence["personalInfo.fullName"], 0.001)
	assert.InDelta(t, 1.0, out.FieldConfidence["personalInfo.email"], 0.001)
}

func TestMapMissingNameAndEmailAreErrors(t *testing.T) {
	m := NewMapper()

	out := m.Map("", nil, "no contact information anywhere in this text")

	fields := make([]string, 0, len(out.Errors))
	for _, e := range out.Errors {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "fullName")
	assert.Contains(t, fields, "email")
}

func TestMapEmailFallsBackToFullText(t *testing.T) {
	m := NewMapper()
	header := "John Doe"
	rawText := "John Doe\n\nReach me at john.doe@example.com for details."

	out := m.Map(header, nil, rawText)

	assert.Equal(t, "john.doe@example.com", out.ResumeData.PersonalInfo.Email)
	// Full-text fallback is trusted less than a header hit.
	assert.InDelta(t, 0.8, out.FieldConfidence["personalInfo.email"], 0.001)
}

func TestMapMissingPhoneAndLocationAreWarnings(t *testing.T) {
	m := NewMapper()

	out := m.Map("John Doe\njohn.doe@example.com", nil, "")

	assert.Empty(t, out.Errors)
	require.NotEmpty(t, out.Warnings)
	joined := ""
	for _, w := range out.Warnings {
		joined += w + "\n"
	}
	assert.Contains(t, joined, "phone")
	assert.Contains(t, joined, "location")
}

func TestMapDispatchesExperienceSection(t *testing.T) {
	m := NewMapper()
	section := experienceSection("Software Engineer at Tech Corp\n2020-2023\n• Developed web applications")

	out := m.Map("John Doe\njohn.doe@example.com", []types.RawSection{section}, "")

	require.Len(t, out.ResumeData.Sections, 1)
	mapped := out.ResumeData.Sections[0]
	assert.Equal(t, types.SectionExperience, mapped.Type)
	assert.Equal(t, "EXPERIENCE", mapped.Title)
	assert.True(t, mapped.Visible)

	require.Len(t, mapped.Items, 1)
	exp := mapped.Items[0].(types.ExperienceItem)
	assert.Contains(t, exp.Title, "Software Engineer")
}

func TestMapCertificationsOnePerLine(t *testing.T) {
	m := NewMapper()
	section := types.RawSection{
		GuessedType:       types.SectionCertifications,
		Title:             "CERTIFICATIONS",
		RawContent:        "AWS Certified Solutions Architect\n• CKA: Certified Kubernetes Administrator",
		Order:             0,
		HeadingConfidence: 0.9,
	}

	out := m.Map("John Doe\njohn.doe@example.com", []types.RawSection{section}, "")

	require.Len(t, out.ResumeData.Sections, 1)
	items := out.ResumeData.Sections[0].Items
	require.Len(t, items, 2)
	assert.Equal(t, "AWS Certified Solutions Architect", items[0].(types.CustomItem).Content)
	assert.Equal(t, "CKA: Certified Kubernetes Administrator", items[1].(types.CustomItem).Content)
}

func TestMapSummaryIsSingleFreeformItem(t *testing.T) {
	m := NewMapper()
	section := types.RawSection{
		GuessedType:       types.SectionSummary,
		Title:             "Summary",
		RawContent:        "Seasoned engineer.\nBuilder of data systems.",
		Order:             0,
		HeadingConfidence: 0.9,
	}

	out := m.Map("John Doe\njohn.doe@example.com", []types.RawSection{section}, "")

	items := out.ResumeData.Sections[0].Items
	require.Len(t, items, 1)
	assert.Contains(t, items[0].(types.CustomItem).Content, "Seasoned engineer")
}

func TestMapEmptySectionKeepsEmptyItems(t *testing.T) {
	m := NewMapper()
	section := types.RawSection{
		GuessedType:       types.SectionSummary,
		Title:             "Summary",
		RawContent:        "",
		Order:             0,
		HeadingConfidence: 0.3,
	}

	out := m.Map("John Doe\njohn.doe@example.com", []types.RawSection{section}, "")

	require.Len(t, out.ResumeData.Sections, 1)
	assert.NotNil(t, out.ResumeData.Sections[0].Items)
	assert.Empty(t, out.ResumeData.Sections[0].Items)
}

func TestMapConfidenceWithinBounds(t *testing.T) {
	m := NewMapper()
	section := experienceSection("Software Engineer at Tech Corp\n2020-2023\n• Developed web applications")

	out := m.Map("John Doe\njohn.doe@example.com\n(555) 123-4567", []types.RawSection{section}, "")

	assert.GreaterOrEqual(t, out.Confidence, 0.0)
	assert.LessOrEqual(t, out.Confidence, 1.0)
	assert.Greater(t, out.Confidence, 0.5, "clean input should score well")
}

func TestMapIsDeterministic(t *testing.T) {
	m := NewMapper()
	header := "John Doe\njohn.doe@example.com\n(555) 123-4567"
	sections := []types.RawSection{
		experienceSection("Software Engineer at Tech Corp\n2020-2023\n• Developed web applications"),
		{GuessedType: types.SectionSkills, Title: "SKILLS", RawContent: "Go, Python, SQL", Order: 1, HeadingConfidence: 0.9},
	}

	first := m.Map(header, sections, header)
	second := m.Map(header, sections, header)

	assert.Equal(t, first.ResumeData, second.ResumeData)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.FieldConfidence, second.FieldConfidence)
}
