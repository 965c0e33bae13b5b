package sheetgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// DiscoverStats tracks source discovery statistics
type DiscoverStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesSkipped    int // Files skipped because they are gitignored
}

// gitIgnore is the parsed .gitignore of the working directory, or nil.
type gitIgnore struct {
	gi *ignore.GitIgnore
}

// loadGitIgnore loads .gitignore from the current directory.
// A missing file is not an error.
func loadGitIgnore() gitIgnore {
	gi, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		return gitIgnore{}
	}
	return gitIgnore{gi: gi}
}

// skip reports whether path is gitignored. Only relative paths are checked;
// absolute paths (like /tmp/...) are outside the project.
func (g gitIgnore) skip(path string) bool {
	if g.gi == nil || filepath.IsAbs(path) {
		return false
	}
	return g.gi.MatchesPath(path)
}

// discoverSources finds source files matching includes under sourceDir.
// Results are deduplicated and keep glob order.
func discoverSources(sourceDir string, includes []string) ([]string, DiscoverStats, error) {
	var files []string
	stats := DiscoverStats{}
	seen := make(map[string]bool)
	gi := loadGitIgnore()

	for _, pattern := range includes {
		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if gi.skip(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
		}
	}

	return files, stats, nil
}
