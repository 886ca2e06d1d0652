package extract

import "regexp"

// cgpaPatterns are tried in order; the first pattern that matches anywhere
// wins, regardless of where the other patterns would have matched.
var cgpaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)CGPA.*?(\d+\.\d{1,2})`),
	regexp.MustCompile(`(?i)GPA.*?(\d+\.\d{1,2})`),
	regexp.MustCompile(`(?i)(\d+\.\d{1,2})\s*/\s*10`),
	regexp.MustCompile(`(?i)(\d+\.\d{1,2})\s*out\s*of\s*10`),
}

// ExtractCGPA returns the grade point average as written in the text.
func ExtractCGPA(text string) (string, float64) {
	return extractCGPA(text, DefaultWeights())
}

func extractCGPA(text string, w Weights) (string, float64) {
	for _, re := range cgpaPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], clampConfidence(w.CGPAFound)
		}
	}
	return "", 0
}
