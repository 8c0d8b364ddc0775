package mapping

import (
	"regexp"
	"strings"
)

// dateToken matches one date-like token: "Jan 2020", "January 2020",
// "01/2020", or a bare year.
const dateToken = `(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+\d{4})|(?:\d{1,2}/\d{4})|(?:\d{4})`

var (
	dateRangePattern = regexp.MustCompile(`(?i)(` + dateToken + `)\s*(?:-|–|—|to|until)\s*((?:` + dateToken + `)|present|current|now)`)
	dateTokenPattern = regexp.MustCompile(`(?i)` + dateToken)
)

// DateRange is a recognized start/end pair. Current is set when the end
// token is an ongoing marker (present, current, now), in which case End is
// empty.
type DateRange struct {
	Start   string
	End     string
	Current bool
}

// extractDateRange finds a date range in line. It returns the range, the
// line's remaining text with the range removed, and whether a range was found.
func extractDateRange(line string) (DateRange, string, bool) {
	loc := dateRangePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return DateRange{}, line, false
	}

	start := line[loc[2]:loc[3]]
	end := line[loc[4]:loc[5]]

	r := DateRange{Start: strings.TrimSpace(start)}
	switch strings.ToLower(strings.TrimSpace(end)) {
	case "present", "current", "now":
		r.Current = true
	default:
		r.End = strings.TrimSpace(end)
	}

	rest := strings.TrimSpace(line[:loc[0]] + " " + line[loc[1]:])
	rest = strings.Trim(rest, " \t|,–—-")
	return r, strings.TrimSpace(rest), true
}

// findDateToken returns the first single date token in line, or "".
func findDateToken(line string) string {
	return strings.TrimSpace(dateTokenPattern.FindString(line))
}

// isDateOnlyLine reports whether the line is essentially just a date or
// date range, with at most light decoration around it.
func isDateOnlyLine(line string) bool {
	stripped := dateRangePattern.ReplaceAllString(line, "")
	stripped = dateTokenPattern.ReplaceAllString(stripped, "")
	stripped = strings.Trim(stripped, " \t|,–—-()")
	return strings.TrimSpace(stripped) == "" && dateTokenPattern.MatchString(line)
}
