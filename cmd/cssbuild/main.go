// Package main provides the cssbuild CLI, which renders YAML stylesheet
// sources to CSS files and typed Go identifiers.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cssbuild: %v\n", err)
		os.Exit(1)
	}
}
