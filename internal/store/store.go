// Package store owns the single in-memory document of an editing
// session: one Invoice plus one DesignConfig. Every mutation is a
// discrete, atomic operation; readers always get a consistent copy.
package store

import (
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/money"
)

// Store is the document state container. Field values arrive as
// strings from the editing surface; numeric fields are parsed and
// validated before the mutation is applied. A rejected mutation leaves
// the state untouched.
type Store struct {
	mu      sync.RWMutex
	invoice model.Invoice
	design  model.DesignConfig
}

// New creates a store holding the session-start document.
func New() *Store {
	return &Store{
		invoice: model.DefaultInvoice(),
		design:  model.DefaultDesign(),
	}
}

// Snapshot returns a copy of the current document and design config.
// The caller may read it freely while mutations continue.
func (s *Store) Snapshot() (model.Invoice, model.DesignConfig) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyInvoice(), s.design
}

// Totals recomputes the aggregate amounts from the current line items
// and tax rate. Pull-based: nothing is cached, nothing can go stale.
func (s *Store) Totals() money.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return money.CalculateTotals(s.invoice.LineItems, s.invoice.Details.TaxRate)
}

// copyInvoice must be called with the lock held.
func (s *Store) copyInvoice() model.Invoice {
	inv := s.invoice
	inv.LineItems = make([]model.LineItem, len(s.invoice.LineItems))
	copy(inv.LineItems, s.invoice.LineItems)
	return inv
}

// UpdateSenderField replaces one scalar field of the sender party.
func (s *Store) UpdateSenderField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return setPartyField(&s.invoice.Sender, "sender", field, value)
}

// UpdateReceiverField replaces one scalar field of the receiver party.
func (s *Store) UpdateReceiverField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return setPartyField(&s.invoice.Receiver, "receiver", field, value)
}

func setPartyField(p *model.Party, entity, field, value string) error {
	switch field {
	case "name":
		p.Name = value
	case "address":
		p.Address = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "logo":
		p.Logo = value
	default:
		return model.NewUnknownFieldError(entity, field)
	}
	return nil
}

// UpdateDetailsField replaces one field of the invoice details.
// taxRate must parse as a number >= 0 or the mutation is rejected.
func (s *Store) UpdateDetailsField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case "number":
		s.invoice.Details.Number = value
	case "date":
		s.invoice.Details.Date = value
	case "dueDate":
		s.invoice.Details.DueDate = value
	case "currency":
		s.invoice.Details.Currency = value
	case "taxRate":
		rate, err := money.FromString(value)
		if err != nil {
			return model.NewValidationError("taxRate", value, "numeric", "must be a number")
		}
		if !money.IsNonNegative(rate) {
			return model.NewValidationError("taxRate", value, "non-negative", "must be >= 0")
		}
		s.invoice.Details.TaxRate = rate
	default:
		return model.NewUnknownFieldError("details", field)
	}
	return nil
}

// AddLineItem appends a zero-valued line item and returns its id.
func (s *Store) AddLineItem() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := model.LineItem{
		ID:       uuid.NewString(),
		Quantity: money.Zero,
		Rate:     money.Zero,
	}
	s.invoice.LineItems = append(s.invoice.LineItems, item)
	return item.ID
}

// UpdateLineItem mutates one field of the line item with the given id.
// Returns model.ErrLineItemNotFound when no item matches.
func (s *Store) UpdateLineItem(id, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoice.LineItems {
		if s.invoice.LineItems[i].ID != id {
			continue
		}
		switch field {
		case "description":
			s.invoice.LineItems[i].Description = value
		case "quantity":
			qty, err := money.FromString(value)
			if err != nil {
				return model.NewValidationError("quantity", value, "numeric", "must be a number")
			}
			if !money.IsNonNegative(qty) {
				return model.NewValidationError("quantity", value, "non-negative", "must be >= 0")
			}
			s.invoice.LineItems[i].Quantity = qty
		case "rate":
			rate, err := money.FromString(value)
			if err != nil {
				return model.NewValidationError("rate", value, "numeric", "must be a number")
			}
			if !money.IsNonNegative(rate) {
				return model.NewValidationError("rate", value, "non-negative", "must be >= 0")
			}
			s.invoice.LineItems[i].Rate = rate
		default:
			return model.NewUnknownFieldError("line item", field)
		}
		return nil
	}
	return model.ErrLineItemNotFound
}

// RemoveLineItem removes the line item with the given id, preserving
// the order of the remaining items.
func (s *Store) RemoveLineItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoice.LineItems {
		if s.invoice.LineItems[i].ID == id {
			s.invoice.LineItems = append(s.invoice.LineItems[:i], s.invoice.LineItems[i+1:]...)
			return nil
		}
	}
	return model.ErrLineItemNotFound
}

// UpdateFooter replaces the footer text verbatim. Multi-line text is
// allowed and no trimming is applied.
func (s *Store) UpdateFooter(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoice.Footer = text
}

// SetDesignProperty replaces one design config field. Template values
// outside the registered set are accepted here; the render registry
// applies the fallback rule when the document is rendered.
func (s *Store) SetDesignProperty(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case "darkMode":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return model.NewValidationError("darkMode", value, "boolean", "must be true or false")
		}
		s.design.DarkMode = enabled
	case "accentColor":
		s.design.AccentColor = value
	case "fontStack":
		s.design.FontStack = value
	case "template":
		s.design.Template = model.TemplateName(value)
	default:
		return model.NewUnknownFieldError("design", key)
	}
	return nil
}

// Reset discards the current document and returns to the session-start
// state. This is the only wholesale replacement the store performs.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoice = model.DefaultInvoice()
	s.design = model.DefaultDesign()
}
