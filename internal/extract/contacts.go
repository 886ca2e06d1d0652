package extract

import "regexp"

// Contact keys.
const (
	ContactPhone    = "phone"
	ContactEmail    = "email"
	ContactLinkedIn = "linkedin"
	ContactGitHub   = "github"
)

// Contacts maps a contact key to the matched value. Keys are present only
// when the corresponding pattern matched.
type Contacts map[string]string

var (
	rePhone    = regexp.MustCompile(`(\+91[- ]?)?[6-9]\d{9}`)
	reEmail    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	reLinkedIn = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9\-_]+`)
	reGitHub   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9\-_]+`)
)

// ExtractContacts looks for a mobile number, an email address and LinkedIn
// and GitHub profile paths using the default weights.
func ExtractContacts(text string) (Contacts, float64) {
	return extractContacts(text, DefaultWeights())
}

func extractContacts(text string, w Weights) (Contacts, float64) {
	probes := []struct {
		key    string
		re     *regexp.Regexp
		weight float64
	}{
		{ContactPhone, rePhone, w.Phone},
		{ContactEmail, reEmail, w.Email},
		{ContactLinkedIn, reLinkedIn, w.LinkedIn},
		{ContactGitHub, reGitHub, w.GitHub},
	}

	out := Contacts{}
	score := 0.0
	for _, p := range probes {
		if m := p.re.FindString(text); m != "" {
			out[p.key] = m
			score += p.weight
		}
	}

	return out, clampConfidence(min(score, w.ContactCap))
}
