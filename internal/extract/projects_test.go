package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProjectsSection(t *testing.T) {
	t.Parallel()

	text := "Jane Doe\nProjects\nResume Parser\n- Built a parser in Go\nChat Application\n- Realtime chat with websockets\nSkills\nPython"

	got, score := ExtractProjects(text)
	assert.Equal(t, []string{
		"Resume Parser – Built a parser in Go",
		"Built a parser in Go",
		"Realtime chat with websockets",
	}, got)
	assert.InDelta(t, 0.9, score, 1e-9)
}

func TestExtractProjectsNumbered(t *testing.T) {
	t.Parallel()

	text := "PROJECTS\n1. Inventory System\nTracks stock levels\nacross warehouses\n2. Weather App\nShows forecasts\nEDUCATION\nB.Tech"

	got, score := ExtractProjects(text)
	assert.Equal(t, []string{
		"Inventory System – Tracks stock levels across warehouses",
		"Weather App – Shows forecasts",
	}, got)
	assert.InDelta(t, 0.9, score, 1e-9)
}

func TestExtractProjectsDeduplicatesTrimmedEntries(t *testing.T) {
	t.Parallel()

	text := "- Built a chat app\n- Built a chat app\n* Built a chat app.\n- Go"

	got, _ := ExtractProjects(text)
	assert.Equal(t, []string{"Built a chat app"}, got)
}

func TestExtractProjectsCap(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "- Project number %d\n", i)
		fmt.Fprintf(&b, "• Project number %d\n", i)
	}

	got, score := ExtractProjects(b.String())
	require.Len(t, got, MaxProjects)
	assert.InDelta(t, 0.9, score, 1e-9)

	seen := make(map[string]struct{}, len(got))
	for _, p := range got {
		_, dup := seen[strings.TrimSpace(p)]
		assert.False(t, dup, "duplicate project %q", p)
		seen[strings.TrimSpace(p)] = struct{}{}
	}
}

func TestExtractProjectsEmpty(t *testing.T) {
	t.Parallel()

	got, score := ExtractProjects("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, score)

	got, score = ExtractProjects("Jane Doe\nSoftware Engineer")
	assert.Empty(t, got)
	assert.Zero(t, score)
}

func TestSectionProjectsGroupsDescriptions(t *testing.T) {
	t.Parallel()

	text := "Projects:\nlibrary portal for campus\n- Catalogue search\n* Loan tracking\nAI/ML\n(2023) used by over five hundred students\nMOBILE\nDone"

	got := sectionProjects(text)
	assert.Equal(t, []string{
		"library portal for campus – Catalogue search; Loan tracking; (2023) used by over five hundred students",
	}, got)
}

func TestSectionProjectsStopsAtCapitalisedLine(t *testing.T) {
	t.Parallel()

	got := sectionProjects("Project Details:\nLibrary Portal\n- Catalogue search")
	assert.Equal(t, []string{"Details:"}, got)
}

func TestIsUpperLine(t *testing.T) {
	t.Parallel()

	assert.True(t, isUpperLine("MOBILE APPS"))
	assert.True(t, isUpperLine("AI/ML 2024"))
	assert.False(t, isUpperLine("Mobile"))
	assert.False(t, isUpperLine("2024"))
}

func TestNumberedProjects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "dotted items with descriptions",
			text: "1. Inventory System\nTracks stock\n2. Weather App\nShows forecasts",
			want: []string{"Inventory System – Tracks stock", "Weather App – Shows forecasts"},
		},
		{
			name: "parenthesised items",
			text: "(1) Inventory System\nTracks stock\n(2) Weather App",
			want: []string{"Inventory System – Tracks stock (2) Weather App", "Weather App"},
		},
		{
			name: "last item without a block",
			text: "Worked on\n1. Foo Tool",
			want: []string{"Foo Tool"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, numberedProjects(tt.text))
		})
	}
}

func TestSectionProjectsStopsAtAnyWordyLine(t *testing.T) {
	t.Parallel()

	text := "projects:\n\n* Loan tracking system\n\ngithub.com/janedoe"

	assert.Empty(t, sectionProjects(text))

	got, _ := ExtractProjects(text)
	assert.Equal(t, []string{"Loan tracking system"}, got)
}

func TestProjectConfidenceIsClamped(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	w.ProjectsFound = 1.5

	_, score := extractProjects("- Built a chat app", w)
	assert.Equal(t, MaxConfidence, score)
}
