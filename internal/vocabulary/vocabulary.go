// Package vocabulary loads the list of known skill terms.
package vocabulary

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

var ErrInvalidVocabulary = errors.New("invalid skill vocabulary")

var defaultSkills = []string{"python", "java", "react", "django", "flask", "aws", "docker"}

// Default returns a fresh copy of the built-in vocabulary.
func Default() []string {
	return append([]string(nil), defaultSkills...)
}

// Clean trims every term and drops blank ones, keeping order.
func Clean(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Parse decodes a JSON array of strings.
func Parse(data []byte) ([]string, error) {
	var terms []string
	if err := json.Unmarshal(data, &terms); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVocabulary, err)
	}

	terms = Clean(terms)
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: no skill terms", ErrInvalidVocabulary)
	}
	return terms, nil
}

// Load reads the vocabulary from a JSON file. It never fails: when the file
// is missing or unusable the reason is logged and Default is returned.
func Load(path string, logger *zap.Logger) []string {
	if logger == nil {
		logger = zap.NewNop()
	}

	path = strings.TrimSpace(path)
	if path == "" {
		logger.Debug("no skills file configured, using default vocabulary")
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("reading skills file, using default vocabulary", zap.String("path", path), zap.Error(err))
		return Default()
	}

	terms, err := Parse(data)
	if err != nil {
		logger.Warn("parsing skills file, using default vocabulary", zap.String("path", path), zap.Error(err))
		return Default()
	}

	logger.Debug("loaded skill vocabulary", zap.String("path", path), zap.Int("terms", len(terms)))
	return terms
}
