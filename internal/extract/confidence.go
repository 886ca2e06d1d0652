package extract

import "math"

// Confidence keys of a Record.
const (
	FieldName       = "name"
	FieldContact    = "contact"
	FieldSkills     = "skills"
	FieldEducation  = "education"
	FieldCGPA       = "cgpa"
	FieldProjects   = "projects"
	FieldExperience = "experience"
)

// Percentages converts field confidences in [0, 1] to whole percentages in
// [0, 99], rounding half to even.
func Percentages(scores map[string]float64) map[string]int {
	out := make(map[string]int, len(scores))
	for field, v := range scores {
		out[field] = int(math.RoundToEven(clampConfidence(v) * 100))
	}
	return out
}
