package sheetgen

import (
	"path/filepath"
	"testing"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverSources(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "base.css.yaml", "rules: []\n")
	b := writeFile(t, dir, "components/button.css.yaml", "rules: []\n")
	c := writeFile(t, dir, "components/deep/card.css.yml", "rules: []\n")
	writeFile(t, dir, "notes.md", "ignored")

	files, stats, err := discoverSources(dir, DefaultIncludes)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{a, b, c}, files)
	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 0, stats.FilesSkipped)
}

func TestDiscoverSourcesDeduplicates(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "base.css.yaml", "rules: []\n")

	files, stats, err := discoverSources(dir, []string{"*.css.yaml", "**/*.css.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{a}, files)
	assert.Equal(t, 1, stats.FilesDiscovered)
}

func TestDiscoverSourcesBadPattern(t *testing.T) {
	_, _, err := discoverSources(t.TempDir(), []string{"[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "glob pattern")
}

func TestGitIgnoreSkip(t *testing.T) {
	gi := gitIgnore{gi: ignore.CompileIgnoreLines("vendor/", "*.draft.css.yaml")}

	tests := []struct {
		path string
		want bool
	}{
		{path: "styles/app.css.yaml", want: false},
		{path: "styles/app.draft.css.yaml", want: true},
		{path: "vendor/lib/theme.css.yaml", want: true},
		{path: filepath.Join(string(filepath.Separator), "tmp", "app.draft.css.yaml"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, gi.skip(tt.path))
		})
	}

	assert.False(t, gitIgnore{}.skip("anything.css.yaml"))
}
