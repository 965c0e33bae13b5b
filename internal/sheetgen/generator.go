package sheetgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/cssbuild"
)

// DefaultIncludes matches YAML stylesheet sources anywhere under the source directory.
var DefaultIncludes = []string{"**/*.css.yaml", "**/*.css.yml"}

// Generate is the main entry point: discover sources, render them to CSS,
// optionally verify the output and write the Go constants file.
//
// A source that fails to load or build is skipped and reported in
// Result.Errors; Generate itself fails only when discovery or writing
// output fails.
func Generate(config Config) (*Result, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("sheetgen")

	includes := config.Includes
	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	result := &Result{}

	// 1. Discover sources
	files, stats, err := discoverSources(config.SourceDir, includes)
	if err != nil {
		return nil, fmt.Errorf("discover failed: %w", err)
	}
	result.SourcesFound = stats.FilesDiscovered
	result.SourcesSkipped = stats.FilesSkipped
	log.Debug("sources discovered",
		zap.String("dir", config.SourceDir),
		zap.Int("found", stats.FilesDiscovered),
		zap.Int("skipped", stats.FilesSkipped))

	// 2. Load and build every source
	sheets, errs := buildSources(files, log)
	result.Errors = multierr.Errors(errs)
	for _, err := range result.Errors {
		result.Warnings = append(result.Warnings, err.Error())
	}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	// 3. Render CSS
	var ids goIdentifiers
	outputs := make(map[string]cssbuild.Stylesheet)
	var order []string
	if config.Bundle != "" && len(sheets) > 0 {
		path := filepath.Join(config.OutputDir, config.Bundle)
		outputs[path] = bundle(sheets)
		order = append(order, path)
	}
	for _, sheet := range sheets {
		result.SourcesRendered++
		result.RulesRendered += len(sheet.Style.Rules())
		result.KeyframesRendered += len(sheet.Style.Keyframes())
		result.VariablesDefined += len(sheet.Variables)
		result.Stats.merge(collectStats(sheet.Declarations))
		ids.add(sheet)

		if config.Bundle == "" {
			path := filepath.Join(config.OutputDir, cssFileName(sheet.Source.Path))
			if _, dup := outputs[path]; dup {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s: output %s already written by another source, skipped", sheet.Source.Path, path))
				continue
			}
			outputs[path] = sheet.Style
			order = append(order, path)
		}
	}

	var issues []Issue
	for _, path := range order {
		text := outputs[path].String() + "\n"
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		result.OutputFiles = append(result.OutputFiles, path)
		log.Debug("wrote stylesheet", zap.String("path", path), zap.Int("bytes", len(text)))

		// 4. Verify
		if config.Verify {
			found := Verify(path, text)
			if len(found) > 0 {
				log.Debug("verification issues", zap.String("path", path), zap.Int("issues", len(found)))
			}
			issues = append(issues, found...)
		}
	}
	result.Issues, result.TruncatedIssues = limitIssues(issues, config.MaxSameIssues)

	// 5. Generate Go constants
	if config.GoFile != "" {
		pkg := config.PackageName
		if pkg == "" {
			pkg = "ui"
		}
		src, err := renderGoFile(pkg, ids)
		if err != nil {
			return nil, fmt.Errorf("generate Go file: %w", err)
		}
		path := filepath.Join(config.OutputDir, config.GoFile)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		result.OutputFiles = append(result.OutputFiles, path)
		result.ClassesGenerated = countPublicClasses(ids.Classes)
	}

	log.Info("generation complete",
		zap.Int("sources", result.SourcesRendered),
		zap.Int("rules", result.RulesRendered),
		zap.Int("keyframes", result.KeyframesRendered),
		zap.Int("failed", len(result.Errors)),
		zap.Int("issues", len(result.Issues)))

	return result, nil
}

// buildSources loads and builds every file. Failures are collected, not fatal.
func buildSources(files []string, log *zap.Logger) ([]*Sheet, error) {
	var sheets []*Sheet
	var errs error

	for _, path := range files {
		log.Debug("building source", zap.String("source", path))

		src, err := LoadSource(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		sheet, err := Build(src)
		if err != nil {
			log.Warn("source skipped", zap.String("source", path), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		sheets = append(sheets, sheet)
	}

	return sheets, errs
}

// bundle merges all sheets into one stylesheet, keeping source order.
func bundle(sheets []*Sheet) cssbuild.Stylesheet {
	var blocks []cssbuild.Block
	for _, sheet := range sheets {
		for _, k := range sheet.Style.Keyframes() {
			blocks = append(blocks, k)
		}
		for _, r := range sheet.Style.Rules() {
			blocks = append(blocks, r)
		}
	}
	return cssbuild.Style(blocks...)
}

// cssFileName maps "theme/buttons.css.yaml" to "buttons.css".
func cssFileName(source string) string {
	base := filepath.Base(source)
	for _, ext := range []string{".css.yaml", ".css.yml", ".yaml", ".yml"} {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext) + ".css"
		}
	}
	return base + ".css"
}

func countPublicClasses(classes []cssbuild.Class) int {
	seen := make(map[string]bool)
	for _, c := range classes {
		if !strings.HasPrefix(c.Name(), "_") {
			seen[c.Name()] = true
		}
	}
	return len(seen)
}
