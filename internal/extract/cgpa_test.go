package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCGPA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		want      string
		wantScore float64
	}{
		{name: "cgpa wins over slash form", text: "Scored 7.2/10 in school\nCGPA: 8.5", want: "8.5", wantScore: 0.99},
		{name: "gpa", text: "GPA 3.85 / 4", want: "3.85", wantScore: 0.99},
		{name: "slash ten", text: "Aggregate 9.1 / 10", want: "9.1", wantScore: 0.99},
		{name: "out of ten", text: "Result 7.75 out of 10", want: "7.75", wantScore: 0.99},
		{name: "case insensitive", text: "cgpa - 9.20", want: "9.20", wantScore: 0.99},
		{name: "integer only", text: "CGPA 9", want: "", wantScore: 0},
		{name: "does not cross lines", text: "CGPA\n8.5", want: "", wantScore: 0},
		{name: "empty", text: "", want: "", wantScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, score := ExtractCGPA(tt.text)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
		})
	}
}
