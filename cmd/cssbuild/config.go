package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssbuild/internal/sheetgen"
)

const envPrefix = "CSSBUILD_"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// A nil koanf makes posflag skip unchanged flags, so flag defaults never
	// shadow file or env values. Defaults live in the get*WithFallback calls.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// A missing file is not an error.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// CSSBUILD_GENERATE_SOURCE -> generate.source
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to its config key. Multi-word keys
// use a double underscore for their dash: CSSBUILD_GENERATE_OUTPUT__DIR.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	s = strings.ReplaceAll(s, "__", "-")
	return strings.ReplaceAll(s, "_", ".")
}

// buildGenerateConfig constructs the pipeline Config from koanf state.
func buildGenerateConfig() sheetgen.Config {
	config := sheetgen.Config{
		SourceDir:     getStringWithFallback("source", "generate.source", "web/styles"),
		OutputDir:     getStringWithFallback("output-dir", "generate.output-dir", "web/static/css"),
		PackageName:   getStringWithFallback("package", "package", "ui"),
		GoFile:        getStringWithFallback("go-file", "generate.go-file", "styles_gen.go"),
		Bundle:        getStringWithFallback("bundle", "generate.bundle", ""),
		Verify:        getBoolWithFallback("verify", "generate.verify", true),
		MaxSameIssues: getIntWithFallback("max-same-issues", "generate.max-same-issues", 0),
	}

	if config.GoFile == "-" {
		config.GoFile = ""
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("generate.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = append([]string(nil), sheetgen.DefaultIncludes...)
	}

	return config
}

// buildReportConfig constructs the reporter settings from koanf state.
func buildReportConfig() sheetgen.ReportConfig {
	return sheetgen.ReportConfig{
		UseColors:        getBoolWithFallback("color", "color", false),
		PrintIssuedLines: true,
		PrintLinterName:  true,
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
