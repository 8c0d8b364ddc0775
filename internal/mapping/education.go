package mapping

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-importer/internal/types"
)

var (
	// Anchored to line start so state abbreviations like "Boston, MA" in
	// school lines do not read as degrees.
	degreePattern = regexp.MustCompile(`(?i)^(?:bachelor|master|ph\.?d|doctor(?:ate)?|associate|diploma|b\.?sc?\.?|m\.?b\.?a\.?|m\.?sc?\.?|b\.?a\.?|m\.?a\.?)\b`)
	gpaPattern    = regexp.MustCompile(`(?i)gpa[:\s]*([0-4](?:\.\d{1,2})?)`)
)

var honorsKeywords = []string{"cum laude", "magna cum laude", "summa cum laude", "honors", "honours", "dean's list"}

// mapEducationItems parses an education block as repeating groups of
// {degree-line, school-line, date-line, optional GPA token}.
func mapEducationItems(content string) ([]types.SectionItem, map[string]float64, []string) {
	var items []types.SectionItem
	confidence := make(map[string]float64)
	var warnings []string

	var cur *types.EducationItem

	flush := func() {
		if cur == nil {
			return
		}
		if cur.Degree == "" && cur.School == "" {
			cur = nil
			return
		}
		idx := len(items)
		if cur.Degree != "" && cur.School != "" {
			confidence[fmt.Sprintf("items[%d].degree", idx)] = 0.9
		} else {
			confidence[fmt.Sprintf("items[%d].degree", idx)] = 0.5
		}
		if cur.GraduationDate == "" {
			warnings = append(warnings, fmt.Sprintf("education entry %q has no graduation date", cur.Degree))
		}
		items = append(items, *cur)
		cur = nil
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(stripBullet(strings.TrimSpace(line)))
		if trimmed == "" {
			flush()
			continue
		}

		if m := gpaPattern.FindStringSubmatch(trimmed); m != nil {
			if cur == nil {
				cur = &types.EducationItem{}
			}
			cur.GPA = m[1]
			// A GPA line can still carry the date: "GPA: 3.8, May 2023".
			if cur.GraduationDate == "" {
				rest := gpaPattern.ReplaceAllString(trimmed, "")
				cur.GraduationDate = findDateToken(rest)
			}
			continue
		}

		if matchHonors(trimmed) != "" && len(trimmed) < 60 {
			if cur == nil {
				cur = &types.EducationItem{}
			}
			if cur.Honors == "" {
				cur.Honors = trimmed
			}
			continue
		}

		if isDateOnlyLine(trimmed) {
			if cur == nil {
				cur = &types.EducationItem{}
			}
			if r, _, ok := extractDateRange(trimmed); ok {
				// Graduation is the end of the range.
				if r.End != "" {
					cur.GraduationDate = r.End
				} else {
					cur.GraduationDate = r.Start
				}
			} else {
				cur.GraduationDate = findDateToken(trimmed)
			}
			continue
		}

		if degreePattern.MatchString(trimmed) {
			if cur != nil && cur.Degree != "" {
				flush()
			}
			if cur == nil {
				cur = &types.EducationItem{}
			}
			if cur.Degree == "" {
				cur.Degree = trimmed
				// Trailing year on the degree line doubles as the date.
				if cur.GraduationDate == "" {
					if token := findDateToken(trimmed); token != "" {
						cur.GraduationDate = token
						cur.Degree = strings.Trim(strings.Replace(trimmed, token, "", 1), " \t|,–—-")
					}
				}
				continue
			}
		}

		if cur == nil {
			cur = &types.EducationItem{}
		}
		if cur.School == "" {
			school, location := splitSchoolLocation(trimmed)
			cur.School = school
			cur.Location = location
			if cur.GraduationDate == "" {
				cur.GraduationDate = findDateToken(trimmed)
			}
		}
	}
	flush()

	return items, confidence, warnings
}

// matchHonors returns the matched honors keyword, or "".
func matchHonors(line string) string {
	lower := strings.ToLower(line)
	for _, kw := range honorsKeywords {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	return ""
}

// splitSchoolLocation splits "State University, Boston, MA" into the school
// name and a trailing location.
func splitSchoolLocation(line string) (school, location string) {
	parts := strings.Split(line, ",")
	if len(parts) >= 3 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(strings.Join(parts[1:], ","))
	}
	return strings.TrimSpace(line), ""
}
