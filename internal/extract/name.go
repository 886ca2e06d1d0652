package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownName is reported when no name could be found.
const UnknownName = "Unknown"

const (
	maxNameLines   = 30
	minNameLineLen = 5
	minNameWords   = 2
	maxNameWords   = 5
	nameTrimCutset = " .,|-–—()[]{}"
)

// nameDenylist marks header and contact lines that never hold a name.
var nameDenylist = []string{
	"email", "phone", "linkedin", "github", "cgpa", "education",
	"skills", "project", "experience",
}

var (
	reNameDecoration = regexp.MustCompile(`[|•*►◆−–—-]`)
	reMultiSpace     = regexp.MustCompile(`\s{2,}`)
	reColumnGap      = regexp.MustCompile(`\s{4,}|\t+`)
	reProperName     = regexp.MustCompile(`^[A-Z][A-Za-z'.-]+\s+[A-Z][A-Za-z'.-]+`)
	reEmailLocalName = regexp.MustCompile(`([a-zA-Z]+)[._]?([a-zA-Z]+)?@`)
)

// ExtractName finds the candidate's name near the top of the text using the
// default weights.
func ExtractName(text string) (string, float64) {
	return extractName(text, DefaultWeights())
}

func extractName(text string, w Weights) (string, float64) {
	seen := make(map[string]struct{})

	for _, line := range leadingLines(text, maxNameLines) {
		line = reNameDecoration.ReplaceAllString(line, " ")
		line = strings.Trim(reMultiSpace.ReplaceAllString(line, " "), nameTrimCutset)

		if utf8.RuneCountInString(line) < minNameLineLen {
			continue
		}
		if containsAny(strings.ToLower(line), nameDenylist) {
			continue
		}

		for _, segment := range reColumnGap.Split(line, -1) {
			name := strings.TrimSpace(segment)
			if name == "" {
				continue
			}

			words := strings.Fields(name)
			if len(words) < minNameWords || len(words) > maxNameWords {
				continue
			}

			key := strings.ToLower(name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			if reProperName.MatchString(name) {
				return name, clampConfidence(w.NameProperCase)
			}
			if allCapitalized(words) {
				return name, clampConfidence(w.NameCapitalized)
			}
		}
	}

	if name := nameFromEmail(text); name != "" {
		return name, clampConfidence(w.NameFromEmail)
	}

	return UnknownName, clampConfidence(w.NameUnknown)
}

// nameFromEmail derives up to two title-cased tokens from the local part of
// the first email-like address.
func nameFromEmail(text string) string {
	m := reEmailLocalName.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	caser := cases.Title(language.Und)
	parts := []string{caser.String(m[1])}
	if m[2] != "" {
		parts = append(parts, caser.String(m[2]))
	}
	return strings.Join(parts, " ")
}

// leadingLines returns up to limit non-blank lines from the top of text.
func leadingLines(text string, limit int) []string {
	out := make([]string, 0, limit)
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
		if len(out) == limit {
			break
		}
	}
	return out
}

func splitLines(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
			return true
		}
		return false
	})
}

func allCapitalized(words []string) bool {
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
