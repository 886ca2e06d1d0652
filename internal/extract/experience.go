package extract

// Experience is a single work experience entry. No extractor fills it yet.
type Experience map[string]string

// ExtractExperience is a placeholder that keeps the record shape stable: it
// always returns an empty list with zero confidence.
func ExtractExperience(string) ([]Experience, float64) {
	return []Experience{}, 0
}
