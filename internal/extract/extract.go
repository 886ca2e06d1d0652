// Package extract turns plain résumé text into a Record of heuristically
// extracted fields, each with a confidence score.
//
// Every extractor is a pure function of the normalized text (and, for skills,
// the vocabulary). Nothing here keeps state between documents, so an
// Extractor can be shared by any number of goroutines.
package extract

import (
	"strings"

	"github.com/muhammadolammi/resumefields/internal/vocabulary"
)

// Extractor assembles Records using a fixed skill vocabulary and set of
// confidence weights.
type Extractor struct {
	vocabulary []string
	weights    Weights
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWeights overrides the confidence constants.
func WithWeights(w Weights) Option {
	return func(e *Extractor) {
		e.weights = w
	}
}

// New returns an Extractor matching skills against vocabulary. An empty
// vocabulary is replaced by vocabulary.Default.
func New(vocab []string, opts ...Option) *Extractor {
	e := &Extractor{
		vocabulary: vocabulary.Clean(vocab),
		weights:    DefaultWeights(),
	}
	if len(e.vocabulary) == 0 {
		e.vocabulary = vocabulary.Default()
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Vocabulary returns a copy of the skill vocabulary in use.
func (e *Extractor) Vocabulary() []string {
	return append([]string(nil), e.vocabulary...)
}

// Extract is a shorthand for New(vocab).Extract on an unnamed document.
func Extract(text string, vocab []string) Record {
	return New(vocab).Extract(Document{Text: text})
}

// Extract normalizes the document text, runs every field extractor on it
// and assembles the Record. It never fails: fields that are not found get
// their default value and a low confidence.
func (e *Extractor) Extract(doc Document) Record {
	text := Normalize(doc.Text)
	w := e.weights

	name, nameScore := extractName(text, w)
	contacts, contactScore := extractContacts(text, w)
	skills, skillsScore := extractSkills(text, e.vocabulary, w)
	cgpa, cgpaScore := extractCGPA(text, w)
	projects, projectsScore := extractProjects(text, w)
	experience, experienceScore := ExtractExperience(text)

	// Layout artifacts often repeat words inside a name or project line.
	name = DedupWords(name)
	for i, p := range projects {
		projects[i] = DedupWords(p)
	}
	projects = dedupStrings(projects)

	return Record{
		File:         doc.Name,
		Name:         name,
		Contacts:     contacts,
		Skills:       skills,
		CGPA:         cgpa,
		Projects:     projects,
		ProjectsText: strings.Join(projects, " "),
		Experience:   experience,
		Confidence: Percentages(map[string]float64{
			FieldName:       nameScore,
			FieldContact:    contactScore,
			FieldSkills:     skillsScore,
			FieldEducation:  w.Education,
			FieldCGPA:       cgpaScore,
			FieldProjects:   projectsScore,
			FieldExperience: experienceScore,
		}),
		Language: DetectLanguage(text),
		RawText:  text,
	}
}
