package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-studio/internal/model"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromFloat creates decimal from float with rounding
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}

// Totals holds the three aggregate amounts derived from line items.
// They are always recomputed from the document, never stored on it.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// CalculateTotals derives subtotal, tax and total from line items and a
// fractional tax rate. Empty input yields all-zero totals. The input
// slice is never mutated.
func CalculateTotals(items []model.LineItem, taxRate decimal.Decimal) Totals {
	subtotal := Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount())
	}
	subtotal = subtotal.Round(2)
	taxAmount := subtotal.Mul(taxRate).Round(2)

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount).Round(2),
	}
}

// currencySymbols maps codes with a conventional prefix symbol.
// Everything else formats as "<amount> <CODE>".
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// FormatCurrency renders an amount as a currency-tagged string with two
// fixed decimal places. Output depends only on (amount, code).
func FormatCurrency(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if symbol, ok := currencySymbols[code]; ok {
		if amount.IsNegative() {
			return "-" + symbol + amount.Neg().StringFixed(2)
		}
		return symbol + amount.StringFixed(2)
	}
	if code == "" {
		return amount.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", amount.StringFixed(2), code)
}
