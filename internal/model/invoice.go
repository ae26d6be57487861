package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party identifies one side of an invoice (sender or receiver).
// Logo is a path to an image file; when empty the party name is
// rendered as styled text instead.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Logo    string `json:"logo,omitempty"`
}

// InvoiceDetails holds the invoice metadata block.
// TaxRate is a decimal fraction (0.08 means 8%).
type InvoiceDetails struct {
	Number   string          `json:"number"`
	Date     string          `json:"date"`
	DueDate  string          `json:"due_date,omitempty"`
	Currency string          `json:"currency"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
}

// LineItem is one billable row. Its amount is always derived as
// Quantity * Rate and never stored.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// Amount returns Quantity * Rate rounded to 2 places.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.Rate).Round(2)
}

// Invoice is the whole document being composed. One instance lives
// per editing session.
type Invoice struct {
	Sender    Party          `json:"sender"`
	Receiver  Party          `json:"receiver"`
	Details   InvoiceDetails `json:"details"`
	LineItems []LineItem     `json:"line_items"`
	Footer    string         `json:"footer"`
}

// DefaultInvoice returns the session-start document: empty parties,
// today's date, USD, 10% tax, no line items.
func DefaultInvoice() Invoice {
	return Invoice{
		Details: InvoiceDetails{
			Number:   "INV-0001",
			Date:     time.Now().UTC().Format("2006-01-02"),
			Currency: "USD",
			TaxRate:  decimal.NewFromFloat(0.1),
		},
		LineItems: []LineItem{},
	}
}
