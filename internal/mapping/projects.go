package mapping

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-importer/internal/types"
)

// technologiesPrefixes introduce a technologies list inside a project block.
var technologiesPrefixes = []string{"technologies:", "tech stack:", "stack:", "built with:", "tech:"}

// mapProjectItems parses a projects block as groups of {name-line,
// description/bullets, optional technologies line, optional URLs and dates}.
func mapProjectItems(content string) ([]types.SectionItem, map[string]float64, []string) {
	var items []types.SectionItem
	confidence := make(map[string]float64)
	var warnings []string

	extractor := RegexFieldExtractor{}

	var cur *types.ProjectItem
	var description []string

	flush := func() {
		if cur == nil {
			return
		}
		if cur.Name == "" && len(description) == 0 {
			cur, description = nil, nil
			return
		}
		cur.Description = strings.Join(description, " ")
		idx := len(items)
		if cur.Name != "" {
			confidence[fmt.Sprintf("items[%d].name", idx)] = 0.8
		} else {
			confidence[fmt.Sprintf("items[%d].name", idx)] = 0.4
		}
		if cur.Description == "" {
			warnings = append(warnings, fmt.Sprintf("project %q has no description", cur.Name))
		}
		items = append(items, *cur)
		cur, description = nil, nil
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}

		if tech := matchTechnologies(trimmed); tech != nil {
			if cur == nil {
				cur = &types.ProjectItem{}
			}
			cur.Technologies = tech
			continue
		}

		links := extractor.Links(trimmed)
		if links.GitHub != "" || links.Website != "" {
			if cur == nil {
				cur = &types.ProjectItem{}
			}
			if links.GitHub != "" && cur.GitHub == "" {
				cur.GitHub = links.GitHub
			}
			if links.Website != "" && cur.URL == "" {
				cur.URL = links.Website
			}
			// A bare link line carries nothing else.
			if isDateOnlyLine(stripLinks(trimmed)) || strings.TrimSpace(stripLinks(trimmed)) == "" {
				continue
			}
		}

		if isBullet(trimmed) {
			if cur == nil {
				cur = &types.ProjectItem{}
			}
			description = append(description, stripBullet(trimmed))
			continue
		}

		if r, rest, ok := extractDateRange(trimmed); ok && isDateOnlyLine(trimmed) {
			if cur == nil {
				cur = &types.ProjectItem{}
			}
			cur.StartDate = r.Start
			cur.EndDate = r.End
			_ = rest
			continue
		}

		// A plain line after description starts a new project.
		if cur != nil && len(description) > 0 {
			flush()
		}
		if cur == nil {
			cur = &types.ProjectItem{}
		}
		if cur.Name == "" {
			name := trimmed
			if r, rest, ok := extractDateRange(trimmed); ok {
				cur.StartDate = r.Start
				cur.EndDate = r.End
				name = rest
			}
			cur.Name = strings.TrimSpace(stripLinks(name))
		} else {
			description = append(description, trimmed)
		}
	}
	flush()

	return items, confidence, warnings
}

// matchTechnologies parses a "Technologies: Go, Postgres" line.
func matchTechnologies(line string) []string {
	lower := strings.ToLower(line)
	for _, prefix := range technologiesPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return splitSkills(strings.TrimSpace(line[len(prefix):]))
		}
	}
	return nil
}

// stripLinks removes URL matches from a line.
func stripLinks(line string) string {
	line = linkedinPattern.ReplaceAllString(line, "")
	line = githubPattern.ReplaceAllString(line, "")
	line = websitePattern.ReplaceAllString(line, "")
	return strings.Trim(line, " \t|,–—-")
}
