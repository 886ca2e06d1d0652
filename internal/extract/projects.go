package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxProjects caps the number of project entries kept per document.
	MaxProjects = 10

	projectSeparator   = " – "
	descriptionJoiner  = "; "
	projectTrimCutset  = " .-_"
	bulletCutset       = "•-* "
	minProjectLen      = 5
	minBlockLineLen    = 2
	minDescriptionWord = 3
)

var (
	reProjectSection = regexp.MustCompile(`(?si)(?:projects?|project details)\s*[:\-]?\s*(.+?)(\n[A-Z][A-Za-z ]{3,}|$)`)
	reProjectTitle   = regexp.MustCompile(`^[A-Za-z].{4,}`)
	reNumberedItem   = regexp.MustCompile(`(?m)^\s*(\d+\.|\(\d+\))\s*(.+)`)
	reBulletItem     = regexp.MustCompile(`(?m)^\s*[-•*]\s*(.+)`)
	reLineBreaks     = regexp.MustCompile(`\n{1,2}`)
)

// projectStrategy is one way of spotting project entries. Strategies run in
// the order listed in projectStrategies and their output is merged.
type projectStrategy struct {
	name string
	find func(text string) []string
}

var projectStrategies = []projectStrategy{
	{name: "section", find: sectionProjects},
	{name: "numbered", find: numberedProjects},
	{name: "bullet", find: bulletProjects},
}

// ExtractProjects collects project descriptions found by the section,
// numbered-list and bullet strategies, in that order. Entries are trimmed,
// deduplicated (first occurrence wins) and capped at MaxProjects.
func ExtractProjects(text string) ([]string, float64) {
	return extractProjects(text, DefaultWeights())
}

func extractProjects(text string, w Weights) ([]string, float64) {
	var candidates []string
	for _, s := range projectStrategies {
		candidates = append(candidates, s.find(text)...)
	}

	out := make([]string, 0, MaxProjects)
	seen := make(map[string]struct{})
	for _, c := range candidates {
		c = strings.Trim(c, projectTrimCutset)
		if utf8.RuneCountInString(c) <= minProjectLen {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	if len(out) > MaxProjects {
		out = out[:MaxProjects]
	}
	if len(out) == 0 {
		return out, 0
	}
	return out, clampConfidence(w.ProjectsFound)
}

// sectionProjects reads the block that follows a "projects" heading, up to
// the next line opening with four or more letters or spaces (any case). A
// plain line starting with a letter opens a new project; bulleted or wordy
// lines after it become its description.
func sectionProjects(text string) []string {
	m := reProjectSection.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var groups [][]string
	for _, line := range strings.Split(m[1], "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) <= minBlockLineLen || isUpperLine(line) {
			continue
		}

		if reProjectTitle.MatchString(line) {
			groups = append(groups, []string{line})
			continue
		}

		if len(groups) > 0 && (hasBullet(line) || len(strings.Fields(line)) > minDescriptionWord) {
			groups[len(groups)-1] = append(groups[len(groups)-1], line)
		}
	}

	out := make([]string, 0, len(groups))
	for _, g := range groups {
		desc := make([]string, 0, len(g)-1)
		for _, d := range g[1:] {
			desc = append(desc, strings.TrimLeft(d, bulletCutset))
		}
		if joined := strings.Join(desc, descriptionJoiner); joined != "" {
			out = append(out, g[0]+projectSeparator+joined)
		} else {
			out = append(out, g[0])
		}
	}
	return out
}

// numberedProjects treats every "N." or "(N)" item as a project title and the
// text up to the next numbered item or upper-case heading as its description.
func numberedProjects(text string) []string {
	var out []string
	for _, m := range reNumberedItem.FindAllStringSubmatch(text, -1) {
		title := strings.TrimSpace(m[2])
		if desc := numberedDescription(text, title); desc != "" {
			out = append(out, title+projectSeparator+desc)
		} else {
			out = append(out, title)
		}
	}
	return out
}

func numberedDescription(text, title string) string {
	re, err := regexp.Compile(`(?s)` + regexp.QuoteMeta(title) + `\s*\n(.+?)(\n\d+\.|\n[A-Z ]{3,}|$)`)
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return reLineBreaks.ReplaceAllString(strings.TrimSpace(m[1]), " ")
}

// bulletProjects returns every bulleted line long enough to be a project.
func bulletProjects(text string) []string {
	var out []string
	for _, m := range reBulletItem.FindAllStringSubmatch(text, -1) {
		if utf8.RuneCountInString(m[1]) > minProjectLen {
			out = append(out, strings.TrimSpace(m[1]))
		}
	}
	return out
}

func hasBullet(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")
}

// isUpperLine reports whether line has at least one cased letter and no
// lower-case ones.
func isUpperLine(line string) bool {
	cased := false
	for _, r := range line {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
