package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssbuild",
	Short: "Typed CSS stylesheet builder for Go projects",
	Long: `Render declarative YAML stylesheet sources to CSS.
Every class, custom property and animation a source declares
also becomes a Go constant: { ui.Card, ui.VarPrimaryColor }`,
	// Default behavior: run generate when no subcommand is given.
	// PreRunE of generateCmd is not triggered when delegating from here,
	// and the generate flags are read from the root's own flag set.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().String("package", "ui", "Go package name of the generated constants")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")
	addGenerateFlags(rootCmd.Flags())

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
