// Package render turns an invoice snapshot into a print-ready A4
// document. Four interchangeable variants share one input contract and
// differ only in layout and emphasis; the registry maps template names
// to variants and falls back to the default for unknown names.
package render

import (
	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/money"
	"github.com/rezonia/invoice-studio/internal/style"
)

// DefaultTemplate is used when a design config names a template that
// has no registered renderer.
const DefaultTemplate = model.TemplateModern

// DefaultTitle is the document title when the caller supplies none.
const DefaultTitle = "Invoice"

// Input is everything a variant needs for one render. Totals and Style
// are resolved once by the registry; variants never recompute them.
type Input struct {
	Invoice model.Invoice
	Totals  money.Totals
	Style   style.Resolved
	Title   string
}

// Renderer lays out one visual variant of the invoice document.
// Rendering is stateless: identical input produces identical bytes.
type Renderer interface {
	// Name returns the template name the variant registers under.
	Name() model.TemplateName

	// Render produces the PDF document for the given input.
	Render(in Input) ([]byte, error)
}

// Registry holds the registered template variants.
type Registry struct {
	renderers map[model.TemplateName]Renderer
}

// NewRegistry creates a registry with all built-in variants.
func NewRegistry() *Registry {
	r := &Registry{renderers: make(map[model.TemplateName]Renderer)}
	r.Register(&modernRenderer{})
	r.Register(&classicRenderer{})
	r.Register(&boldRenderer{})
	r.Register(&minimalRenderer{})
	return r
}

// Register adds a variant, replacing any variant of the same name.
func (r *Registry) Register(renderer Renderer) {
	r.renderers[renderer.Name()] = renderer
}

// Get returns the variant for a template name, falling back to the
// default variant for unknown names. Never returns nil.
func (r *Registry) Get(name model.TemplateName) Renderer {
	if renderer, ok := r.renderers[name]; ok {
		return renderer
	}
	return r.renderers[DefaultTemplate]
}

// Names returns the registered template names in stable order.
func (r *Registry) Names() []model.TemplateName {
	known := []model.TemplateName{
		model.TemplateModern,
		model.TemplateClassic,
		model.TemplateBold,
		model.TemplateMinimal,
	}
	names := make([]model.TemplateName, 0, len(r.renderers))
	for _, n := range known {
		if _, ok := r.renderers[n]; ok {
			names = append(names, n)
		}
	}
	return names
}

// Render is the single entry point for producing a document: it
// computes totals, resolves the style exactly once, selects the
// variant named by the design config and runs it.
func (r *Registry) Render(invoice model.Invoice, design model.DesignConfig, title string) ([]byte, error) {
	if title == "" {
		title = DefaultTitle
	}
	in := Input{
		Invoice: invoice,
		Totals:  money.CalculateTotals(invoice.LineItems, invoice.Details.TaxRate),
		Style:   style.Resolve(design),
		Title:   title,
	}
	return r.Get(design.Template).Render(in)
}
