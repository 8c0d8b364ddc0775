package mapping

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-importer/internal/types"
)

// titleCompanySeparators split a combined "Title at Company" line, tried in
// order.
var titleCompanySeparators = []string{" at ", " @ ", " | ", " — ", " – ", " - "}

// mapExperienceItems parses an experience block as repeating groups of
// {title-line, company-line, date-range-line, bullet-lines*}.
func mapExperienceItems(content string) ([]types.SectionItem, map[string]float64, []string) {
	var items []types.SectionItem
	confidence := make(map[string]float64)
	var warnings []string

	var cur *types.ExperienceItem

	flush := func() {
		if cur == nil {
			return
		}
		if cur.Title == "" && cur.Company == "" && len(cur.Description) == 0 {
			cur = nil
			return
		}
		idx := len(items)

		switch {
		case cur.Title != "" && cur.Company != "":
			confidence[fmt.Sprintf("items[%d].title", idx)] = 0.9
		case cur.Title != "":
			confidence[fmt.Sprintf("items[%d].title", idx)] = 0.7
		default:
			confidence[fmt.Sprintf("items[%d].title", idx)] = 0.4
		}
		if cur.StartDate != "" {
			confidence[fmt.Sprintf("items[%d].dates", idx)] = 0.9
		} else {
			warnings = append(warnings, fmt.Sprintf("experience entry %q has no dates", cur.Title))
		}
		if len(cur.Description) == 0 {
			warnings = append(warnings, fmt.Sprintf("experience entry %q has no description", cur.Title))
		}

		items = append(items, *cur)
		cur = nil
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}

		if isBullet(trimmed) {
			if cur == nil {
				cur = &types.ExperienceItem{}
			}
			cur.Description = append(cur.Description, stripBullet(trimmed))
			continue
		}

		// A date line may carry a trailing location: "2020-2023 | New York, NY".
		if r, rest, ok := extractDateRange(trimmed); ok && (isDateOnlyLine(trimmed) || locationPattern.MatchString(rest)) {
			// A date line after bullets belongs to the next entry.
			if cur != nil && (cur.StartDate != "" || len(cur.Description) > 0) {
				flush()
			}
			if cur == nil {
				cur = &types.ExperienceItem{}
			}
			cur.StartDate = r.Start
			cur.EndDate = r.End
			cur.Current = r.Current
			if rest != "" && cur.Location == "" && !isBullet(rest) {
				cur.Location = rest
			}
			continue
		}

		// A plain text line after bullets or a completed header group starts
		// a new entry.
		if cur != nil && (len(cur.Description) > 0 || (cur.Title != "" && cur.Company != "" && cur.StartDate != "")) {
			flush()
		}
		if cur == nil {
			cur = &types.ExperienceItem{}
		}

		switch {
		case cur.Title == "":
			title, company := splitTitleCompany(trimmed)
			cur.Title = title
			cur.Company = company
		case cur.Company == "":
			cur.Company = trimmed
		default:
			cur.Description = append(cur.Description, trimmed)
		}
	}
	flush()

	return items, confidence, warnings
}

// splitTitleCompany splits a combined title line like
// "Software Engineer at Tech Corp" into its title and company parts.
func splitTitleCompany(line string) (title, company string) {
	for _, sep := range titleCompanySeparators {
		if idx := strings.Index(line, sep); idx > 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):])
		}
	}
	return line, ""
}

// isBullet reports whether the line starts with a bullet marker.
func isBullet(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "- ") ||
		strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "◦") ||
		strings.HasPrefix(line, "▪")
}

// stripBullet removes the leading bullet marker from a line.
func stripBullet(line string) string {
	for _, marker := range []string{"•", "◦", "▪", "- ", "* "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker))
		}
	}
	return line
}
