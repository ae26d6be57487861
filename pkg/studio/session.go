package studio

import (
	"github.com/rezonia/invoice-studio/internal/export"
	"github.com/rezonia/invoice-studio/internal/render"
	"github.com/rezonia/invoice-studio/internal/store"
)

// Session is one editing session: a document, its design config and
// the render/export machinery. It wraps the internal state container
// so embedding programs get the full mutation and render API.
type Session struct {
	store    *store.Store
	registry *render.Registry
	exporter *export.Exporter
}

// NewSession creates a session holding the default document.
func NewSession() *Session {
	registry := render.NewRegistry()
	return &Session{
		store:    store.New(),
		registry: registry,
		exporter: export.NewExporter(registry),
	}
}

// Snapshot returns a copy of the current document and design config.
func (s *Session) Snapshot() (Invoice, DesignConfig) {
	return s.store.Snapshot()
}

// Totals recomputes the aggregate amounts from the current state.
func (s *Session) Totals() Totals {
	return s.store.Totals()
}

// UpdateSenderField replaces one scalar field of the sender party.
func (s *Session) UpdateSenderField(field, value string) error {
	return s.store.UpdateSenderField(field, value)
}

// UpdateReceiverField replaces one scalar field of the receiver party.
func (s *Session) UpdateReceiverField(field, value string) error {
	return s.store.UpdateReceiverField(field, value)
}

// UpdateDetailsField replaces one field of the invoice details.
func (s *Session) UpdateDetailsField(field, value string) error {
	return s.store.UpdateDetailsField(field, value)
}

// AddLineItem appends a zero-valued line item and returns its id.
func (s *Session) AddLineItem() string {
	return s.store.AddLineItem()
}

// UpdateLineItem mutates one field of the line item with the given id.
func (s *Session) UpdateLineItem(id, field, value string) error {
	return s.store.UpdateLineItem(id, field, value)
}

// RemoveLineItem removes the line item with the given id.
func (s *Session) RemoveLineItem(id string) error {
	return s.store.RemoveLineItem(id)
}

// UpdateFooter replaces the footer text verbatim.
func (s *Session) UpdateFooter(text string) {
	s.store.UpdateFooter(text)
}

// SetDesignProperty replaces one design config field.
func (s *Session) SetDesignProperty(key, value string) error {
	return s.store.SetDesignProperty(key, value)
}

// Reset discards the current document and returns to defaults.
func (s *Session) Reset() {
	s.store.Reset()
}

// Render produces the document with the active template. Unknown
// template names fall back to the default variant.
func (s *Session) Render(title string) ([]byte, error) {
	invoice, design := s.store.Snapshot()
	return s.registry.Render(invoice, design, title)
}

// Export renders and validates a capture for the printing facility.
func (s *Session) Export(title string) (*Capture, error) {
	invoice, design := s.store.Snapshot()
	return s.exporter.Export(invoice, design, title)
}

// Capture is one exported document.
type Capture = export.Capture
