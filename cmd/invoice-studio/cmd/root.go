package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "invoice-studio",
	Short: "Compose and render invoice documents",
	Long: `Invoice Studio is a CLI tool for composing invoice documents and
rendering them as PDFs.

Supports:
  - Four paper templates: modern, classic, bold, minimal
  - Named accent palette or custom hex accent colors
  - A font catalog spanning serif, sans, and mono families
  - An HTTP API for interactive editing

Examples:
  # Render the default document with the modern template
  invoice-studio render -o invoice.pdf

  # Render an invoice document from JSON with a different look
  invoice-studio render invoice.json --template bold --accent rose-600

  # List the font catalog
  invoice-studio fonts -f table

  # Start the HTTP API server
  invoice-studio serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")

	// Load from environment variables if not set via flags
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if outputFormat == "json" {
		if env := os.Getenv("STUDIO_FORMAT"); env != "" {
			outputFormat = env
		}
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
