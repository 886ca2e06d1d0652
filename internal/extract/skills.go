package extract

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExtractSkills reports every vocabulary term found in text as a whole word,
// title-cased and sorted, using the default weights.
func ExtractSkills(text string, vocabulary []string) ([]string, float64) {
	return extractSkills(text, vocabulary, DefaultWeights())
}

func extractSkills(text string, vocabulary []string, w Weights) ([]string, float64) {
	low := strings.ToLower(text)
	caser := cases.Title(language.Und)

	found := make(map[string]struct{})
	for _, skill := range vocabulary {
		term := strings.ToLower(strings.TrimSpace(skill))
		if term == "" {
			continue
		}
		if containsWord(low, term) {
			found[titleWords(caser, strings.TrimSpace(skill))] = struct{}{}
		}
	}

	if len(found) == 0 {
		return []string{}, clampConfidence(w.SkillsNone)
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)

	// Each match counts for less as the vocabulary grows.
	span := max(1, len(vocabulary)/5)
	score := w.SkillsBase + w.SkillsSpan*float64(len(skills))/float64(span)
	return skills, clampConfidence(min(score, w.SkillsCap))
}

// titleWords title-cases every run of cased letters on its own, so "node.js"
// becomes "Node.Js" and "c++" becomes "C++".
func titleWords(caser cases.Caser, s string) string {
	var b strings.Builder
	start := -1
	for i, r := range s {
		if isCased(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// containsWord reports whether term occurs in text with no ASCII letter or
// digit directly before or after it. Both arguments must be lower-cased.
func containsWord(text, term string) bool {
	for offset := 0; offset <= len(text)-len(term); {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(term)
		if (start == 0 || !isWordByte(text[start-1])) && (end == len(text) || !isWordByte(text[end])) {
			return true
		}
		offset = start + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
