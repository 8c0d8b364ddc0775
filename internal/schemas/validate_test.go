package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-importer/internal/types"
)

func TestResolveSchemaPath(t *testing.T) {
	path := ResolveSchemaPath(ResumeDataSchemaPath)
	assert.NotEmpty(t, path, "schema file should be reachable from the package directory")
}

func TestValidateResumeDataValid(t *testing.T) {
	data := types.ResumeData{
		PersonalInfo: types.PersonalInfo{
			FullName: "John Doe",
			Email:    "john.doe@example.com",
		},
		Sections: []types.ResumeSection{
			{
				Type:  types.SectionExperience,
				Title: "Experience",
				Items: []types.SectionItem{
					types.ExperienceItem{
						Title:       "Software Engineer",
						Company:     "Tech Corp",
						StartDate:   "2020",
						Description: []string{"Developed web applications"},
					},
				},
				Visible: true,
				Order:   0,
			},
		},
	}

	payload, err := json.Marshal(data)
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeData(payload))
}

func TestValidateResumeDataEmptySections(t *testing.T) {
	data := types.ResumeData{
		PersonalInfo: types.PersonalInfo{FullName: "John Doe", Email: "j@example.com"},
		Sections:     []types.ResumeSection{},
	}

	payload, err := json.Marshal(data)
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeData(payload))
}

func TestValidateResumeDataMissingPersonalInfo(t *testing.T) {
	err := ValidateResumeData([]byte(`{"sections": []}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateResumeDataUnknownSectionType(t *testing.T) {
	payload := []byte(`{
		"personal_info": {"full_name": "John Doe", "email": "j@example.com"},
		"sections": [{"type": "publications", "title": "P", "items": [], "visible": true, "order": 0}]
	}`)

	err := ValidateResumeData(payload)
	require.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateResumeDataItemMissingKind(t *testing.T) {
	payload := []byte(`{
		"personal_info": {"full_name": "John Doe", "email": "j@example.com"},
		"sections": [{"type": "custom", "title": "X", "items": [{"content": "y"}], "visible": true, "order": 0}]
	}`)

	err := ValidateResumeData(payload)
	require.Error(t, err)
}

func TestValidateResumeDataMalformedJSON(t *testing.T) {
	err := ValidateResumeData([]byte(`{not json`))
	assert.Error(t, err)
}
