package extract

import (
	"regexp"
	"strings"
)

var (
	reHorizontalSpace = regexp.MustCompile(`[ \t]+`)
	reBlankRun        = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans text produced by a document decoder: null bytes become
// spaces, runs of spaces and tabs collapse to one space, carriage returns
// become newlines, three or more newlines collapse to a blank line and the
// result is trimmed.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\x00", " ")
	text = reHorizontalSpace.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = reBlankRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
