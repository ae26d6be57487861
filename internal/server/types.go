package server

import (
	"github.com/rezonia/invoice-studio/internal/fonts"
	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/money"
)

// FieldUpdateRequest addresses one scalar field by name.
type FieldUpdateRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// FooterRequest replaces the footer text verbatim.
type FooterRequest struct {
	Text string `json:"text"`
}

// DesignUpdateRequest replaces one design config property.
type DesignUpdateRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ExportRequest triggers a capture with an optional document title.
type ExportRequest struct {
	Title string `json:"title"`
}

// InvoiceResponse is the full document snapshot with derived totals.
type InvoiceResponse struct {
	Invoice model.Invoice      `json:"invoice"`
	Design  model.DesignConfig `json:"design"`
	Totals  money.Totals       `json:"totals"`
}

// ItemCreatedResponse carries the id of a freshly added line item.
type ItemCreatedResponse struct {
	ID string `json:"id"`
}

// FontsResponse is the catalog grouped by category.
type FontsResponse struct {
	Serif []fonts.Font `json:"serif"`
	Sans  []fonts.Font `json:"sans"`
	Mono  []fonts.Font `json:"mono"`
}
