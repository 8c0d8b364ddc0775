package mapping

import (
	"regexp"
	"strings"
)

// Confidence levels for extracted fields. A clean single pattern hit is fully
// trusted; picking the first of several candidates is a heuristic choice.
const (
	confidenceExact     = 1.0
	confidenceFirstOfN  = 0.7
	confidenceHeuristic = 0.8
)

// Links holds profile and website URLs found in the document.
type Links struct {
	LinkedIn string
	GitHub   string
	Website  string
}

// FieldExtractor isolates pattern-based field extraction so alternative
// strategies can be substituted without changing the mapper.
type FieldExtractor interface {
	// Email returns the best email candidate and its confidence.
	Email(text string) (string, float64)
	// Phone returns the best phone candidate and its confidence.
	Phone(text string) (string, float64)
	// Name returns the candidate full name from the header region.
	Name(headerText string) (string, float64)
	// Location returns a location line from the header region.
	Location(headerText string) (string, float64)
	// Links returns profile and website URLs found in text.
	Links(text string) Links
}

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?\d{1,2}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9\-_%]+`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9\-_.]+`)
	websitePattern  = regexp.MustCompile(`(?i)(?:https?://|www\.)[A-Za-z0-9.\-]+\.[A-Za-z]{2,}(?:/\S*)?`)
	locationPattern = regexp.MustCompile(`^[A-Z][A-Za-z .'\-]+,\s*[A-Za-z .]{2,}$`)
)

// RegexFieldExtractor is the default pattern-based field extractor.
type RegexFieldExtractor struct{}

// Email implements FieldExtractor.
func (RegexFieldExtractor) Email(text string) (string, float64) {
	matches := emailPattern.FindAllString(text, -1)
	switch len(matches) {
	case 0:
		return "", 0
	case 1:
		return matches[0], confidenceExact
	default:
		return matches[0], confidenceFirstOfN
	}
}

// Phone implements FieldExtractor.
func (RegexFieldExtractor) Phone(text string) (string, float64) {
	matches := phonePattern.FindAllString(text, -1)
	switch len(matches) {
	case 0:
		return "", 0
	case 1:
		return strings.TrimSpace(matches[0]), confidenceExact
	default:
		return strings.TrimSpace(matches[0]), confidenceFirstOfN
	}
}

// Name implements FieldExtractor. The full name is the first non-empty
// header line that is not itself an email, phone, URL, or location pattern.
func (RegexFieldExtractor) Name(headerText string) (string, float64) {
	first := true
	for _, line := range strings.Split(headerText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if emailPattern.MatchString(trimmed) || phonePattern.MatchString(trimmed) ||
			websitePattern.MatchString(trimmed) || locationPattern.MatchString(trimmed) {
			first = false
			continue
		}
		if first {
			return trimmed, confidenceExact
		}
		return trimmed, confidenceHeuristic
	}
	return "", 0
}

// Location implements FieldExtractor.
func (RegexFieldExtractor) Location(headerText string) (string, float64) {
	for _, line := range strings.Split(headerText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || emailPattern.MatchString(trimmed) || phonePattern.MatchString(trimmed) {
			continue
		}
		if locationPattern.MatchString(trimmed) {
			return trimmed, confidenceHeuristic
		}
	}
	return "", 0
}

// Links implements FieldExtractor.
func (RegexFieldExtractor) Links(text string) Links {
	links := Links{
		LinkedIn: linkedinPattern.FindString(text),
		GitHub:   githubPattern.FindString(text),
	}

	for _, candidate := range websitePattern.FindAllString(text, -1) {
		if linkedinPattern.MatchString(candidate) || githubPattern.MatchString(candidate) {
			continue
		}
		links.Website = candidate
		break
	}
	return links
}
