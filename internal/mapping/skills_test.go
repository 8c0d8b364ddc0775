package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-importer/internal/types"
)

func TestMapSkillsItemsCommaSeparated(t *testing.T) {
	items, confidence, warnings := mapSkillsItems("Go, Python, SQL, Docker")

	require.Len(t, items, 1)
	skills := items[0].(types.SkillsItem)
	assert.Equal(t, "Skills", skills.Category)
	assert.Equal(t, []string{"Go", "Python", "SQL", "Docker"}, skills.Skills)
	assert.InDelta(t, 0.85, confidence["items[0].skills"], 0.001)
	assert.Empty(t, warnings)
}

func TestMapSkillsItemsCategoryLabels(t *testing.T) {
	content := `Languages: Go, Python
Databases: PostgreSQL, Redis`

	items, _, _ := mapSkillsItems(content)

	require.Len(t, items, 2)
	languages := items[0].(types.SkillsItem)
	databases := items[1].(types.SkillsItem)
	assert.Equal(t, "Languages", languages.Category)
	assert.Equal(t, []string{"Go", "Python"}, languages.Skills)
	assert.Equal(t, "Databases", databases.Category)
	assert.Equal(t, []string{"PostgreSQL", "Redis"}, databases.Skills)
}

func TestMapSkillsItemsNewlinePerSkill(t *testing.T) {
	content := `Kubernetes
Terraform
Ansible`

	items, _, _ := mapSkillsItems(content)

	require.Len(t, items, 1)
	skills := items[0].(types.SkillsItem)
	assert.Equal(t, []string{"Kubernetes", "Terraform", "Ansible"}, skills.Skills)
}

func TestMapSkillsItemsBulletMarkers(t *testing.T) {
	content := `• Go
• Python`

	items, _, _ := mapSkillsItems(content)

	require.Len(t, items, 1)
	assert.Equal(t, []string{"Go", "Python"}, items[0].(types.SkillsItem).Skills)
}

func TestMapSkillsItemsDeduplicates(t *testing.T) {
	items, _, _ := mapSkillsItems("Go, go, GO, Python")

	require.Len(t, items, 1)
	assert.Equal(t, []string{"Go", "Python"}, items[0].(types.SkillsItem).Skills)
}

func TestMapSkillsItemsEmptyWarns(t *testing.T) {
	items, _, warnings := mapSkillsItems("   \n  ")

	assert.Empty(t, items)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "no recognizable skills")
}

func TestSplitCategoryLabel(t *testing.T) {
	category, rest := splitCategoryLabel("Languages: Go, Python")
	assert.Equal(t, "Languages", category)
	assert.Equal(t, "Go, Python", rest)

	// A sentence with a late colon is not a category label.
	category, _ = splitCategoryLabel("Experienced in many areas of software development: backend, frontend")
	assert.Empty(t, category)

	category, _ = splitCategoryLabel("no label here")
	assert.Empty(t, category)
}
