package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = ".cssbuild.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssbuild.yaml config file",
	Long:  `Create a .cssbuild.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# cssbuild configuration

# Shared settings
package: ui
verbose: false
quiet: false

# Generation settings
generate:
  source: web/styles
  output-dir: web/static/css
  include:
    - "**/*.css.yaml"
    - "**/*.css.yml"
  go-file: styles_gen.go   # "-" disables the Go constants file
  bundle: ""               # e.g. app.css to merge every source
  verify: true
  output-format: summary   # summary | full | json
  max-same-issues: 0       # 0 = unlimited
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
