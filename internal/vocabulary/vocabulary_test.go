package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     func(t *testing.T) string
		want     []string
		wantWarn bool
	}{
		{
			name: "valid file",
			path: func(t *testing.T) string { return writeFile(t, `["go", " rust ", ""]`) },
			want: []string{"go", "rust"},
		},
		{
			name: "no path configured",
			path: func(*testing.T) string { return "" },
			want: Default(),
		},
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
			want:     Default(),
			wantWarn: true,
		},
		{
			name:     "invalid json",
			path:     func(t *testing.T) string { return writeFile(t, `{"skills": `) },
			want:     Default(),
			wantWarn: true,
		},
		{
			name:     "not a list of strings",
			path:     func(t *testing.T) string { return writeFile(t, `[1, 2, 3]`) },
			want:     Default(),
			wantWarn: true,
		},
		{
			name:     "empty list",
			path:     func(t *testing.T) string { return writeFile(t, `[]`) },
			want:     Default(),
			wantWarn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			core, logs := observer.New(zapcore.WarnLevel)
			got := Load(tt.path(t), zap.New(core))

			assert.Equal(t, tt.want, got)
			if tt.wantWarn {
				assert.Equal(t, 1, logs.Len())
			} else {
				assert.Zero(t, logs.Len())
			}
		})
	}
}

func TestLoadNilLogger(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Default(), Load("/does/not/exist.json", nil))
}

func TestParse(t *testing.T) {
	t.Parallel()

	terms, err := Parse([]byte(`["python", "docker"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "docker"}, terms)

	_, err = Parse([]byte(`["  "]`))
	assert.ErrorIs(t, err, ErrInvalidVocabulary)

	_, err = Parse([]byte(`nope`))
	assert.ErrorIs(t, err, ErrInvalidVocabulary)
}

func TestDefaultReturnsCopy(t *testing.T) {
	t.Parallel()

	d := Default()
	d[0] = "changed"
	assert.Equal(t, "python", Default()[0])
	assert.Equal(t, []string{"python", "java", "react", "django", "flask", "aws", "docker"}, Default())
}
