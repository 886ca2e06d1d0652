package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "John John Smith Smith", want: "John Smith"},
		{input: "Go go GO Rust", want: "Go Rust"},
		{input: "  spaced   out spaced ", want: "spaced out"},
		{input: "Already unique", want: "Already unique"},
		{input: "", want: ""},
		{input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DedupWords(tt.input))
		})
	}
}

func TestDedupStrings(t *testing.T) {
	t.Parallel()

	got := dedupStrings([]string{"b", "a", "b", "c", "a"})
	assert.Equal(t, []string{"b", "a", "c"}, got)
	assert.Empty(t, dedupStrings(nil))
}
