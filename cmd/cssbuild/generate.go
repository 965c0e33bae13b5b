package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/yacobolo/cssbuild/internal/sheetgen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Render YAML stylesheet sources to CSS",
	Long: `Load *.css.yaml sources, render them to CSS files and write a Go file
with one constant per declared class, custom property and animation.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd.Flags())
}

// addGenerateFlags registers the generation flags. The root command shares
// them because it runs generate when no subcommand is given.
func addGenerateFlags(f *pflag.FlagSet) {
	f.String("source", "web/styles", "Source directory of stylesheet YAML files")
	f.String("output-dir", "web/static/css", "Output directory for generated files")
	f.StringSlice("include", nil, "Glob patterns for sources to include")
	f.String("go-file", "styles_gen.go", `Generated Go file name ("-" disables)`)
	f.String("bundle", "", "Merge every source into this one CSS file")
	f.Bool("verify", true, "Parse the rendered CSS and report syntax problems")
	f.String("output-format", "", "Output format: summary|full|json")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()

	log, err := newLogger(getBoolWithFallback("verbose", "verbose", false))
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	config.Logger = log

	result, err := sheetgen.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		format := sheetgen.DetermineOutputFormat(
			getStringWithFallback("output-format", "generate.output-format", ""))
		if err := sheetgen.WriteOutput(outputWriter(cmd), result, format, buildReportConfig()); err != nil {
			return err
		}
	}

	if result.HasErrors() {
		return fmt.Errorf("generation finished with %d failed source(s) and %d issue(s)",
			len(result.Errors), len(result.Issues))
	}
	return nil
}

// newLogger returns a development console logger in verbose mode and a
// no-op logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return cfg.Build()
}

func outputWriter(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stdout
	}
	return cmd.OutOrStdout()
}
