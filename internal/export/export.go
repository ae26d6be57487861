// Package export captures the currently composed document as a
// print-ready PDF. The capture is synchronous: it renders from the
// snapshot it is given, so no mutation can interleave mid-capture.
package export

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/render"
)

// Capture is one exported document.
type Capture struct {
	Title string
	PDF   []byte
	Pages int
}

// Exporter produces captures through a render registry.
type Exporter struct {
	registry *render.Registry
}

// NewExporter creates an exporter over the given registry.
func NewExporter(registry *render.Registry) *Exporter {
	return &Exporter{registry: registry}
}

// Export renders the invoice with the active template and returns the
// validated PDF. An empty title falls back to "Invoice".
func (e *Exporter) Export(invoice model.Invoice, design model.DesignConfig, title string) (*Capture, error) {
	if title == "" {
		title = render.DefaultTitle
	}

	pdf, err := e.registry.Render(invoice, design, title)
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}

	// The capture handed to the printing facility must be well formed.
	if err := api.Validate(bytes.NewReader(pdf), nil); err != nil {
		return nil, fmt.Errorf("validate capture: %w", err)
	}

	pages, err := api.PageCount(bytes.NewReader(pdf), nil)
	if err != nil {
		return nil, fmt.Errorf("page count: %w", err)
	}

	return &Capture{
		Title: title,
		PDF:   pdf,
		Pages: pages,
	}, nil
}
