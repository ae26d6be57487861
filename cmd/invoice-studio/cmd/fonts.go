package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-studio/internal/fonts"
)

var fontsCategory string

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List the font catalog",
	Long: `List the fonts available to invoice documents.

Fonts are grouped into serif, sans, and mono categories. The catalog value
is what the design's fontStack property accepts.

Examples:
  invoice-studio fonts
  invoice-studio fonts -f table
  invoice-studio fonts --category mono`,
	RunE: runFonts,
}

func init() {
	rootCmd.AddCommand(fontsCmd)

	fontsCmd.Flags().StringVar(&fontsCategory, "category", "", "Limit to one category (serif, sans, mono)")
}

func runFonts(cmd *cobra.Command, args []string) error {
	var list []fonts.Font
	if fontsCategory != "" {
		list = fonts.ByCategory(fonts.Category(fontsCategory))
		if len(list) == 0 {
			return fmt.Errorf("unknown category: %s", fontsCategory)
		}
	} else {
		list = fonts.All()
	}

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(list)
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VALUE\tNAME\tCATEGORY\tFAMILY")
		fmt.Fprintln(w, "-----\t----\t--------\t------")
		for _, f := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Value, f.Name, fonts.ResolveCategory(f.Value), f.Family)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}
