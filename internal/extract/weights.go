package extract

import "math"

// MaxConfidence is the ceiling for every field confidence. A score of 1.0 is
// never produced.
const MaxConfidence = 0.99

// Weights holds the confidence constants used by the extractors. They are
// tuning parameters, not measured statistics.
type Weights struct {
	// Name extractor.
	NameProperCase  float64
	NameCapitalized float64
	NameFromEmail   float64
	NameUnknown     float64

	// Contact extractor, added per field found and capped at ContactCap.
	Phone      float64
	Email      float64
	LinkedIn   float64
	GitHub     float64
	ContactCap float64

	// Skills extractor.
	SkillsNone float64
	SkillsBase float64
	SkillsSpan float64
	SkillsCap  float64

	CGPAFound     float64
	ProjectsFound float64

	// Education has no extractor; the value is reported as-is.
	Education float64
}

// DefaultWeights returns the stock confidence constants.
func DefaultWeights() Weights {
	return Weights{
		NameProperCase:  0.99,
		NameCapitalized: 0.97,
		NameFromEmail:   0.85,
		NameUnknown:     0.1,

		Phone:      0.35,
		Email:      0.35,
		LinkedIn:   0.2,
		GitHub:     0.2,
		ContactCap: MaxConfidence,

		SkillsNone: 0.1,
		SkillsBase: 0.3,
		SkillsSpan: 0.7,
		SkillsCap:  0.98,

		CGPAFound:     0.99,
		ProjectsFound: 0.9,

		Education: 0.5,
	}
}

func clampConfidence(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > MaxConfidence:
		return MaxConfidence
	default:
		return v
	}
}
