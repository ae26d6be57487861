package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-studio/internal/export"
	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/render"
)

var (
	renderOutput   string
	renderTemplate string
	renderAccent   string
	renderFont     string
	renderTitle    string
)

// renderDocument is the JSON shape accepted by the render command. Missing
// fields fall back to the default document.
type renderDocument struct {
	Invoice model.Invoice      `json:"invoice"`
	Design  model.DesignConfig `json:"design"`
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render an invoice document as PDF",
	Long: `Render an invoice document as a PDF file.

Reads a JSON document with "invoice" and "design" sections, or renders
the default document when no file is given. Template, accent color, and
font stack can be overridden with flags.

Examples:
  invoice-studio render -o invoice.pdf
  invoice-studio render invoice.json --template classic
  invoice-studio render invoice.json --accent "#e11d48" --font playfair
  invoice-studio render invoice.json --title "Invoice INV-0042" -o out.pdf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "invoice.pdf", "Output PDF file")
	renderCmd.Flags().StringVar(&renderTemplate, "template", "", "Template override (modern, classic, bold, minimal)")
	renderCmd.Flags().StringVar(&renderAccent, "accent", "", "Accent color override (palette name or #hex)")
	renderCmd.Flags().StringVar(&renderFont, "font", "", "Font stack override (catalog value, e.g. inter)")
	renderCmd.Flags().StringVar(&renderTitle, "title", "", "Document title (default: Invoice)")
}

func runRender(cmd *cobra.Command, args []string) error {
	doc := renderDocument{
		Invoice: model.DefaultInvoice(),
		Design:  model.DefaultDesign(),
	}

	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse document: %w", err)
		}
		printVerbose("Loaded document from %s\n", args[0])
	}

	if renderTemplate != "" {
		doc.Design.Template = model.TemplateName(renderTemplate)
	}
	if renderAccent != "" {
		doc.Design.AccentColor = renderAccent
	}
	if renderFont != "" {
		doc.Design.FontStack = renderFont
	}

	exporter := export.NewExporter(render.NewRegistry())
	capture, err := exporter.Export(doc.Invoice, doc.Design, renderTitle)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := os.WriteFile(renderOutput, capture.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printVerbose("Template: %s, Pages: %d\n", doc.Design.Template, capture.Pages)
	fmt.Printf("Wrote %s (%d bytes)\n", renderOutput, len(capture.PDF))

	return nil
}
