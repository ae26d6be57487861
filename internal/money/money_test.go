package money_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/money"
)

func TestFromFloat(t *testing.T) {
	d := money.FromFloat(100.555)
	// Should round to 2 decimal places
	assert.True(t, d.Equal(dec.NewFromFloat(100.56)))
}

func TestFromString(t *testing.T) {
	d, err := money.FromString(" 123456.78 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.RequireFromString("123456.78")))

	_, err = money.FromString("not-a-number")
	require.Error(t, err)
}

func TestIsNonNegative(t *testing.T) {
	assert.True(t, money.IsNonNegative(dec.NewFromInt(1)))
	assert.True(t, money.IsNonNegative(dec.Zero))
	assert.False(t, money.IsNonNegative(dec.NewFromInt(-1)))
}

func TestCalculateTotals(t *testing.T) {
	items := []model.LineItem{
		{ID: "1", Description: "Design", Quantity: dec.NewFromInt(2), Rate: dec.NewFromInt(100)},
		{ID: "2", Description: "Development", Quantity: dec.NewFromInt(3), Rate: dec.NewFromInt(50)},
	}

	totals := money.CalculateTotals(items, dec.NewFromFloat(0.1))

	// Subtotal = 200 + 150 = 350
	assert.True(t, totals.Subtotal.Equal(dec.NewFromInt(350)),
		"Expected subtotal 350, got %s", totals.Subtotal.String())

	// Tax = 350 * 0.1 = 35
	assert.True(t, totals.TaxAmount.Equal(dec.NewFromInt(35)),
		"Expected tax 35, got %s", totals.TaxAmount.String())

	// Total = 350 + 35 = 385
	assert.True(t, totals.Total.Equal(dec.NewFromInt(385)),
		"Expected total 385, got %s", totals.Total.String())
}

func TestCalculateTotals_ReferenceScenario(t *testing.T) {
	items := []model.LineItem{
		{ID: "1", Description: "Consulting", Quantity: dec.NewFromInt(10), Rate: dec.NewFromInt(50)},
	}

	totals := money.CalculateTotals(items, dec.NewFromFloat(0.1))

	assert.True(t, totals.Subtotal.Equal(dec.NewFromInt(500)))
	assert.True(t, totals.TaxAmount.Equal(dec.NewFromInt(50)))
	assert.True(t, totals.Total.Equal(dec.NewFromInt(550)))
	assert.Equal(t, "$550.00", money.FormatCurrency(totals.Total, "USD"))
}

func TestCalculateTotals_Empty(t *testing.T) {
	totals := money.CalculateTotals(nil, dec.NewFromFloat(0.2))

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.IsZero())

	totals = money.CalculateTotals([]model.LineItem{}, dec.Zero)
	assert.True(t, totals.Total.IsZero())
}

func TestCalculateTotals_DoesNotMutateInput(t *testing.T) {
	items := []model.LineItem{
		{ID: "1", Quantity: dec.NewFromInt(4), Rate: dec.NewFromFloat(2.5)},
	}

	first := money.CalculateTotals(items, dec.NewFromFloat(0.08))
	second := money.CalculateTotals(items, dec.NewFromFloat(0.08))

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, items[0].Quantity.Equal(dec.NewFromInt(4)))
	assert.True(t, items[0].Rate.Equal(dec.NewFromFloat(2.5)))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{"usd with cents", 1234.5, "USD", "$1234.50"},
		{"eur zero", 0, "EUR", "€0.00"},
		{"gbp", 99.99, "GBP", "£99.99"},
		{"negative usd", -42.5, "USD", "-$42.50"},
		{"lowercase code", 10, "usd", "$10.00"},
		{"untagged code", 1500, "VND", "1500.00 VND"},
		{"empty code", 7.250, "", "7.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.FormatCurrency(dec.NewFromFloat(tt.amount), tt.code)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatCurrency_Stable(t *testing.T) {
	a := money.FormatCurrency(dec.NewFromFloat(550), "USD")
	b := money.FormatCurrency(dec.NewFromFloat(550), "USD")
	assert.Equal(t, a, b)
}
