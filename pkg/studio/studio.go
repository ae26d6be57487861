// Package studio provides a public API for composing invoices.
//
// This package exposes the core types for editing an invoice document,
// adjusting its design, and rendering it through one of the built-in
// template variants.
//
// Example usage:
//
//	session := studio.NewSession()
//	id := session.AddLineItem()
//	_ = session.UpdateLineItem(id, "description", "Consulting")
//	_ = session.UpdateLineItem(id, "quantity", "10")
//	_ = session.UpdateLineItem(id, "rate", "50")
//	pdf, err := session.Render("Invoice")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("invoice.pdf", pdf, 0644)
package studio

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-studio/internal/fonts"
	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/money"
)

// Re-export core types for public API
type (
	Amount         = decimal.Decimal
	Invoice        = model.Invoice
	LineItem       = model.LineItem
	Party          = model.Party
	InvoiceDetails = model.InvoiceDetails
	DesignConfig   = model.DesignConfig
	TemplateName   = model.TemplateName
	Totals         = money.Totals
	Font           = fonts.Font
	FontCategory   = fonts.Category
)

// Re-export template names
const (
	TemplateModern  = model.TemplateModern
	TemplateClassic = model.TemplateClassic
	TemplateBold    = model.TemplateBold
	TemplateMinimal = model.TemplateMinimal
)

// Re-export error types
type (
	ValidationError   = model.ValidationError
	UnknownFieldError = model.UnknownFieldError
)

// ErrLineItemNotFound is returned by line-item operations when no item
// matches the given id.
var ErrLineItemNotFound = model.ErrLineItemNotFound

// Fonts returns the catalog entries for one category.
func Fonts(c FontCategory) []Font {
	return fonts.ByCategory(c)
}

// FormatCurrency formats an amount with the shared currency rule used
// by every template.
func FormatCurrency(amount Amount, code string) string {
	return money.FormatCurrency(amount, code)
}
