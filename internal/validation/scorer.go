package validation

import (
	"github.com/jonathan/resume-importer/internal/types"
)

// Scorer computes a validation confidence score in [0, 1] for mapped resume
// data.
type Scorer interface {
	Score(data *types.ResumeData) float64
}

// WeightedScorer blends three signals: how many personal info fields were
// filled, how many sections were recognized as a known type, and how much
// structured content the sections carry.
type WeightedScorer struct {
	CompletenessWeight float64
	RecognizedWeight   float64
	RichnessWeight     float64
}

// DefaultScorer returns the standard scoring weights.
func DefaultScorer() WeightedScorer {
	return WeightedScorer{
		CompletenessWeight: 0.5,
		RecognizedWeight:   0.3,
		RichnessWeight:     0.2,
	}
}

// Score implements Scorer.
func (s WeightedScorer) Score(data *types.ResumeData) float64 {
	if data == nil {
		return 0
	}
	score := s.CompletenessWeight*FieldCompleteness(data.PersonalInfo) +
		s.RecognizedWeight*recognizedRatio(data.Sections) +
		s.RichnessWeight*contentRichness(data.Sections)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// FieldCompleteness is the fraction of personal info fields that are filled.
// Name and email count double since they are required.
func FieldCompleteness(info types.PersonalInfo) float64 {
	filled, total := 0.0, 0.0

	weigh := func(value string, weight float64) {
		total += weight
		if value != "" {
			filled += weight
		}
	}
	weigh(info.FullName, 2)
	weigh(info.Email, 2)
	weigh(info.Phone, 1)
	weigh(info.Location, 1)
	weigh(info.LinkedIn, 1)
	weigh(info.GitHub, 1)
	weigh(info.Website, 1)

	return filled / total
}

// recognizedRatio is the fraction of sections that carry a known type other
// than the catch-all custom type.
func recognizedRatio(sections []types.ResumeSection) float64 {
	if len(sections) == 0 {
		return 0
	}
	recognized := 0
	for _, section := range sections {
		if types.IsKnownSectionType(section.Type) && section.Type != types.SectionCustom {
			recognized++
		}
	}
	return float64(recognized) / float64(len(sections))
}

// contentRichness saturates as sections accumulate structured items. Four
// items per section on average scores full marks.
func contentRichness(sections []types.ResumeSection) float64 {
	if len(sections) == 0 {
		return 0
	}
	itemCount := 0
	for _, section := range sections {
		itemCount += len(section.Items)
	}
	richness := float64(itemCount) / (4 * float64(len(sections)))
	if richness > 1 {
		return 1
	}
	return richness
}
