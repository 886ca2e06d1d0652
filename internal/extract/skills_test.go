package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkillsWholeWord(t *testing.T) {
	t.Parallel()

	skills, score := ExtractSkills("I used reactive programming", []string{"react"})
	assert.Empty(t, skills)
	assert.InDelta(t, 0.1, score, 1e-9)

	skills, score = ExtractSkills("I used React daily", []string{"react"})
	assert.Equal(t, []string{"React"}, skills)
	assert.InDelta(t, 0.98, score, 1e-9)
}

func TestExtractSkills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		vocab []string
		want  []string
	}{
		{
			name:  "sorted and deduplicated",
			text:  "Docker and AWS and python",
			vocab: []string{"python", "Python", "aws", "docker", "java"},
			want:  []string{"Aws", "Docker", "Python"},
		},
		{
			name:  "symbols inside terms",
			text:  "Languages: C++, Go",
			vocab: []string{"c++", "go"},
			want:  []string{"C++", "Go"},
		},
		{
			name:  "digits count as word characters",
			text:  "worked with python3 only",
			vocab: []string{"python"},
			want:  []string{},
		},
		{
			name:  "match at text boundaries",
			text:  "java",
			vocab: []string{"java"},
			want:  []string{"Java"},
		},
		{
			name:  "multi word term",
			text:  "Interested in machine learning.",
			vocab: []string{"machine learning"},
			want:  []string{"Machine Learning"},
		},
		{
			name:  "punctuation starts a new word",
			text:  "Built with Node.js, ASP.NET and o'reilly tooling",
			vocab: []string{"node.js", "asp.net", "o'reilly"},
			want:  []string{"Asp.Net", "Node.Js", "O'Reilly"},
		},
		{
			name:  "blank terms are ignored",
			text:  "anything",
			vocab: []string{"", "  "},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, score := ExtractSkills(tt.text, tt.vocab)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, MaxConfidence)
		})
	}
}

func TestExtractSkillsScoreScalesWithVocabulary(t *testing.T) {
	t.Parallel()

	vocab := make([]string, 0, 20)
	vocab = append(vocab, "go")
	for i := 0; i < 19; i++ {
		vocab = append(vocab, "unused"+string(rune('a'+i)))
	}

	skills, score := ExtractSkills("go", vocab)
	assert.Equal(t, []string{"Go"}, skills)
	// 0.3 + 0.7 * 1 / (20 / 5)
	assert.InDelta(t, 0.475, score, 1e-9)
}

func TestContainsWord(t *testing.T) {
	t.Parallel()

	assert.True(t, containsWord("react react", "react"))
	assert.True(t, containsWord("reactive, react.", "react"))
	assert.False(t, containsWord("reactive", "react"))
	assert.False(t, containsWord("preact", "react"))
	assert.False(t, containsWord("re", "react"))
}
