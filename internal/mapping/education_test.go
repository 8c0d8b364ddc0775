package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-importer/internal/types"
)

func TestMapEducationItemsBasicEntry(t *testing.T) {
	content := `BS Computer Science
State University, Boston, MA
2015 - 2019
GPA: 3.8`

	items, confidence, warnings := mapEducationItems(content)

	require.Len(t, items, 1)
	edu, ok := items[0].(types.EducationItem)
	require.True(t, ok)

	assert.Equal(t, "BS Computer Science", edu.Degree)
	assert.Equal(t, "State University", edu.School)
	assert.Equal(t, "Boston, MA", edu.Location)
	assert.Equal(t, "2019", edu.GraduationDate)
	assert.Equal(t, "3.8", edu.GPA)

	assert.InDelta(t, 0.9, confidence["items[0].degree"], 0.001)
	assert.Empty(t, warnings)
}

func TestMapEducationItemsDegreeLineWithYear(t *testing.T) {
	content := `Master of Science in Data Engineering, 2021
Tech Institute`

	items, _, _ := mapEducationItems(content)

	require.Len(t, items, 1)
	edu := items[0].(types.EducationItem)
	assert.Contains(t, edu.Degree, "Master of Science")
	assert.NotContains(t, edu.Degree, "2021")
	assert.Equal(t, "2021", edu.GraduationDate)
	assert.Equal(t, "Tech Institute", edu.School)
}

func TestMapEducationItemsHonors(t *testing.T) {
	content := `BA Economics
City College
May 2018
Magna Cum Laude`

	items, _, _ := mapEducationItems(content)

	require.Len(t, items, 1)
	edu := items[0].(types.EducationItem)
	assert.Equal(t, "Magna Cum Laude", edu.Honors)
	assert.Equal(t, "May 2018", edu.GraduationDate)
}

func TestMapEducationItemsMultipleEntries(t *testing.T) {
	content := `MS Computer Science
Tech University
2021

BS Mathematics
State College
2019`

	items, _, _ := mapEducationItems(content)

	require.Len(t, items, 2)
	assert.Equal(t, "MS Computer Science", items[0].(types.EducationItem).Degree)
	assert.Equal(t, "BS Mathematics", items[1].(types.EducationItem).Degree)
}

func TestMapEducationItemsMissingDateWarns(t *testing.T) {
	content := `PhD Physics
Research University`

	items, _, warnings := mapEducationItems(content)

	require.Len(t, items, 1)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "no graduation date")
}

func TestMapEducationItemsEmptyContent(t *testing.T) {
	items, confidence, warnings := mapEducationItems("")

	assert.Empty(t, items)
	assert.Empty(t, confidence)
	assert.Empty(t, warnings)
}

func TestSplitSchoolLocation(t *testing.T) {
	school, location := splitSchoolLocation("State University, Boston, MA")
	assert.Equal(t, "State University", school)
	assert.Equal(t, "Boston, MA", location)

	school, location = splitSchoolLocation("Plain College")
	assert.Equal(t, "Plain College", school)
	assert.Empty(t, location)
}
