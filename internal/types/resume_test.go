package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeSectionJSONRoundTrip(t *testing.T) {
	section := ResumeSection{
		Type:  SectionExperience,
		Title: "Experience",
		Items: []SectionItem{
			ExperienceItem{
				Title:       "Software Engineer",
				Company:     "Tech Corp",
				StartDate:   "2020",
				EndDate:     "2023",
				Description: []string{"Developed web applications"},
			},
			CustomItem{Content: "Freeform note"},
		},
		Visible: true,
		Order:   0,
	}

	data, err := json.Marshal(section)
	require.NoError(t, err)

	var decoded ResumeSection
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded.Items, 2)

	exp, ok := decoded.Items[0].(ExperienceItem)
	require.True(t, ok, "first item should decode as ExperienceItem")
	assert.Equal(t, "Software Engineer", exp.Title)
	assert.Equal(t, "Tech Corp", exp.Company)
	assert.Equal(t, []string{"Developed web applications"}, exp.Description)

	custom, ok := decoded.Items[1].(CustomItem)
	require.True(t, ok, "second item should decode as CustomItem")
	assert.Equal(t, "Freeform note", custom.Content)
}

func TestResumeSectionJSONKindDiscriminator(t *testing.T) {
	section := ResumeSection{
		Type:    SectionSkills,
		Title:   "Skills",
		Items:   []SectionItem{SkillsItem{Category: "Languages", Skills: []string{"Go"}}},
		Visible: true,
	}

	data, err := json.Marshal(section)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"skills"`)
}

func TestResumeSectionUnmarshalUnknownKind(t *testing.T) {
	raw := `{"type":"custom","title":"X","items":[{"kind":"nonsense"}],"visible":true,"order":0}`

	var section ResumeSection
	err := json.Unmarshal([]byte(raw), &section)
	assert.Error(t, err)
}

func TestAllItemVariantsRoundTrip(t *testing.T) {
	items := []SectionItem{
		ExperienceItem{Title: "Engineer", Company: "Corp", StartDate: "2020", Current: true, Description: []string{"a"}},
		EducationItem{Degree: "BS Computer Science", School: "State University", GraduationDate: "2019", GPA: "3.8"},
		SkillsItem{Category: "Tools", Skills: []string{"Docker", "Kubernetes"}},
		ProjectItem{Name: "Importer", Technologies: []string{"Go"}, GitHub: "github.com/x/importer"},
		CustomItem{Content: "AWS Certified Solutions Architect"},
	}

	for _, item := range items {
		section := ResumeSection{Type: SectionCustom, Items: []SectionItem{item}, Visible: true}
		data, err := json.Marshal(section)
		require.NoError(t, err)

		var decoded ResumeSection
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Len(t, decoded.Items, 1)
		assert.Equal(t, item.Kind(), decoded.Items[0].Kind())
		assert.Equal(t, item, decoded.Items[0])
	}
}

func TestIsKnownSectionType(t *testing.T) {
	for _, st := range KnownSectionTypes() {
		assert.True(t, IsKnownSectionType(st), "expected %s to be known", st)
	}
	assert.False(t, IsKnownSectionType(SectionType("publications")))
}
