package mapping

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-importer/internal/types"
)

// defaultSkillsCategory groups skills when the block carries no category
// labels of its own.
const defaultSkillsCategory = "Skills"

// maxCategoryLabelLength bounds how long a "Label:" prefix can be before it
// is treated as sentence text instead of a category.
const maxCategoryLabelLength = 30

// mapSkillsItems splits a skills block on commas, bullet markers, or
// newline-per-skill, grouped under a single category unless category labels
// (ending in a colon) are present.
func mapSkillsItems(content string) ([]types.SectionItem, map[string]float64, []string) {
	confidence := make(map[string]float64)
	var warnings []string

	categories := []string{}
	skillsByCategory := make(map[string][]string)

	add := func(category string, skills []string) {
		if _, seen := skillsByCategory[category]; !seen && len(skills) > 0 {
			categories = append(categories, category)
		}
		skillsByCategory[category] = append(skillsByCategory[category], skills...)
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(stripBullet(strings.TrimSpace(line)))
		if trimmed == "" {
			continue
		}

		category, rest := splitCategoryLabel(trimmed)
		if category != "" {
			add(category, splitSkills(rest))
			continue
		}
		add(defaultSkillsCategory, splitSkills(trimmed))
	}

	var items []types.SectionItem
	for _, category := range categories {
		skills := dedupeSkills(skillsByCategory[category])
		if len(skills) == 0 {
			continue
		}
		idx := len(items)
		confidence[fmt.Sprintf("items[%d].skills", idx)] = 0.85
		items = append(items, types.SkillsItem{Category: category, Skills: skills})
	}

	if len(items) == 0 {
		warnings = append(warnings, "skills section contained no recognizable skills")
	}

	return items, confidence, warnings
}

// splitCategoryLabel recognizes "Languages: Go, Python" style lines and
// returns the label and the remainder.
func splitCategoryLabel(line string) (category, rest string) {
	idx := strings.Index(line, ":")
	if idx <= 0 || idx > maxCategoryLabelLength {
		return "", line
	}
	label := strings.TrimSpace(line[:idx])
	if label == "" || strings.ContainsAny(label, ",;") {
		return "", line
	}
	return label, strings.TrimSpace(line[idx+1:])
}

// splitSkills breaks a line into individual skills. A line without any
// separator is a single skill (newline-per-skill layout).
func splitSkills(line string) []string {
	if line == "" {
		return nil
	}
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '•'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// dedupeSkills removes duplicates case-insensitively, keeping first spelling.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
