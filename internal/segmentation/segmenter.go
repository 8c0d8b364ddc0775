// Package segmentation splits raw resume text into ordered section blocks
// with guessed semantic types and heading confidence.
package segmentation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-importer/internal/types"
)

// Heading confidence levels by detection method.
const (
	confidenceOverride   = 1.0
	confidenceVocabulary = 0.9
	confidenceKeyword    = 0.6
	confidenceHeuristic  = 0.5
	confidenceFallback   = 0.3
)

// maxHeadingLength bounds how long a heuristic heading line can be, in runes.
const maxHeadingLength = 40

// headingVocabulary maps normalized heading text to a section type.
var headingVocabulary = map[string]types.SectionType{
	"experience":              types.SectionExperience,
	"work experience":         types.SectionExperience,
	"professional experience": types.SectionExperience,
	"employment":              types.SectionExperience,
	"employment history":      types.SectionExperience,
	"work history":            types.SectionExperience,
	"education":               types.SectionEducation,
	"academic background":     types.SectionEducation,
	"skills":                  types.SectionSkills,
	"technical skills":        types.SectionSkills,
	"core competencies":       types.SectionSkills,
	"projects":                types.SectionProjects,
	"personal projects":       types.SectionProjects,
	"certifications":          types.SectionCertifications,
	"certificates":            types.SectionCertifications,
	"licenses and certifications": types.SectionCertifications,
	"summary":                 types.SectionSummary,
	"professional summary":    types.SectionSummary,
	"objective":               types.SectionSummary,
	"profile":                 types.SectionSummary,
	"about me":                types.SectionSummary,
}

// keywordTypes classifies unlisted headings that still contain a recognizable
// keyword, e.g. "RELEVANT EXPERIENCE".
var keywordTypes = []struct {
	keyword     string
	sectionType types.SectionType
}{
	{"experience", types.SectionExperience},
	{"employment", types.SectionExperience},
	{"education", types.SectionEducation},
	{"skills", types.SectionSkills},
	{"competencies", types.SectionSkills},
	{"projects", types.SectionProjects},
	{"certification", types.SectionCertifications},
	{"summary", types.SectionSummary},
	{"objective", types.SectionSummary},
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	urlPattern   = regexp.MustCompile(`(?i)(?:https?://|www\.)\S+`)
)

// Segmenter detects section headings and splits raw text into RawSections.
type Segmenter struct{}

// NewSegmenter creates a section segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// detectedHeading is the classification of one heading line.
type detectedHeading struct {
	sectionType types.SectionType
	title       string
	confidence  float64
}

// Segment splits rawText into section blocks and returns them together with
// the leading header block (the personal-info region, which is never itself a
// section). override remaps heading text to section types, matched
// case-insensitively; entries there are trusted with full confidence.
//
// Sections keep the order of first occurrence in the document. Multiple
// headings mapping to the same type are merged into one section with
// concatenated content and the earliest order.
func (s *Segmenter) Segment(rawText string, override map[string]types.SectionType) ([]types.RawSection, string) {
	lines := strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n")

	normalizedOverride := make(map[string]types.SectionType, len(override))
	for heading, sectionType := range override {
		normalizedOverride[normalizeHeading(heading)] = sectionType
	}

	var headerLines []string
	var sections []types.RawSection
	contentByType := make(map[types.SectionType][]string)
	orderByType := make(map[types.SectionType]int)

	currentType := types.SectionType("")
	inSection := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		heading, ok := s.classifyLine(trimmed, i, lines, normalizedOverride)
		if ok {
			// A repeated heading of an already-seen type merges into the
			// earlier section; content keeps accumulating under that type.
			if _, seen := orderByType[heading.sectionType]; !seen {
				order := len(sections)
				sections = append(sections, types.RawSection{
					GuessedType:       heading.sectionType,
					Title:             heading.title,
					Order:             order,
					HeadingConfidence: heading.confidence,
				})
				orderByType[heading.sectionType] = order
			}
			currentType = heading.sectionType
			inSection = true
			continue
		}

		if !inSection {
			headerLines = append(headerLines, line)
			continue
		}
		contentByType[currentType] = append(contentByType[currentType], line)
	}

	if len(sections) == 0 {
		// No heading anywhere: emit the whole document as a single summary
		// section so downstream stages always have something to work with.
		// The first paragraph still serves as the personal-info header.
		header := leadingParagraph(lines)
		return []types.RawSection{{
			GuessedType:       types.SectionSummary,
			Title:             "Summary",
			RawContent:        strings.TrimSpace(rawText),
			Order:             0,
			HeadingConfidence: confidenceFallback,
		}}, header
	}

	for i := range sections {
		sections[i].RawContent = strings.TrimSpace(strings.Join(contentByType[sections[i].GuessedType], "\n"))
	}

	return sections, strings.TrimSpace(strings.Join(headerLines, "\n"))
}

// classifyLine decides whether line i is a section heading.
func (s *Segmenter) classifyLine(trimmed string, i int, lines []string, override map[string]types.SectionType) (detectedHeading, bool) {
	if trimmed == "" {
		return detectedHeading{}, false
	}

	norm := normalizeHeading(trimmed)

	if sectionType, ok := override[norm]; ok {
		return detectedHeading{sectionType: sectionType, title: trimmed, confidence: confidenceOverride}, true
	}

	if sectionType, ok := headingVocabulary[norm]; ok {
		return detectedHeading{sectionType: sectionType, title: trimmed, confidence: confidenceVocabulary}, true
	}

	if !looksLikeHeading(trimmed, i, lines) {
		return detectedHeading{}, false
	}

	for _, kw := range keywordTypes {
		if strings.Contains(norm, kw.keyword) {
			return detectedHeading{sectionType: kw.sectionType, title: trimmed, confidence: confidenceKeyword}, true
		}
	}

	return detectedHeading{sectionType: types.SectionCustom, title: trimmed, confidence: confidenceHeuristic}, true
}

// looksLikeHeading applies the heuristic fallback: a short isolated line,
// all-caps or title-case, preceded by a blank line and immediately followed
// by denser bulleted or paragraph text.
func looksLikeHeading(trimmed string, i int, lines []string) bool {
	if len([]rune(trimmed)) > maxHeadingLength || len(trimmed) < 2 {
		return false
	}
	if i == 0 || strings.TrimSpace(lines[i-1]) != "" {
		return false
	}
	if isBulletLine(trimmed) || strings.HasSuffix(trimmed, ".") || strings.HasSuffix(trimmed, ",") {
		return false
	}
	if emailPattern.MatchString(trimmed) || phonePattern.MatchString(trimmed) || urlPattern.MatchString(trimmed) {
		return false
	}
	if !isAllCaps(trimmed) && !isTitleCase(trimmed) {
		return false
	}

	// Require denser content right after the candidate heading.
	for j := i + 1; j < len(lines) && j <= i+2; j++ {
		next := strings.TrimSpace(lines[j])
		if next == "" {
			continue
		}
		return isBulletLine(next) || len([]rune(next)) > len([]rune(trimmed))
	}
	return false
}

// normalizeHeading lowercases a heading and strips decoration so it can be
// matched against the vocabulary.
func normalizeHeading(line string) string {
	norm := strings.TrimSpace(line)
	norm = strings.TrimSuffix(norm, ":")
	norm = strings.ToLower(norm)
	norm = strings.ReplaceAll(norm, "&", "and")
	return strings.Join(strings.Fields(norm), " ")
}

// isBulletLine reports whether the line starts with a bullet marker.
func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "- ") ||
		strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "◦") ||
		strings.HasPrefix(line, "▪")
}

// isAllCaps reports whether the line contains letters and none lowercase.
func isAllCaps(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase reports whether every word starts with an uppercase letter.
func isTitleCase(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > 5 {
		return false
	}
	for _, word := range words {
		runes := []rune(word)
		if !unicode.IsUpper(runes[0]) && !unicode.IsDigit(runes[0]) {
			return false
		}
	}
	return true
}

// leadingParagraph returns the lines before the first blank line.
func leadingParagraph(lines []string) string {
	var out []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(out) > 0 {
				break
			}
			continue
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
