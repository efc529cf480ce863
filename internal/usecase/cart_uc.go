package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/phenrril/vitrina/internal/domain"
)

// CartUC holds the authoritative set of line items for one cart. It is pure
// state: every operation mutates or reads the collection and returns data,
// and all rendering happens in the adapter layer that consumes the results.
//
// The collection lives for the session and is never persisted; losing it on
// restart is expected.
type CartUC struct {
	items []*domain.LineItem
}

func NewCartUC() *CartUC { return &CartUC{} }

// Add puts a product in the cart. The id is derived from title and text when
// the seed data carries none. At most one line exists per id: adding an
// already-present product increments its quantity instead of appending a
// duplicate. The bool reports whether a new line was created.
func (uc *CartUC) Add(p domain.Product) (*domain.LineItem, bool) {
	id := p.ID
	if id == "" {
		id = domain.DeriveItemID(p.Title, p.Text)
	}
	if existing := uc.FindByID(id); existing != nil {
		existing.Qty++
		return existing, false
	}
	p.ID = id
	item := domain.NewLineItem(p)
	uc.items = append(uc.items, item)
	return item, true
}

// Remove deletes the line with the given id after the user confirms. The
// confirm capability comes from the calling layer; a nil confirm declines.
// Returns domain.ErrNotFound for an unknown id and domain.ErrDeclined when
// the user says no; the cart is untouched in both cases.
func (uc *CartUC) Remove(id string, confirm domain.ConfirmFunc) (*domain.LineItem, error) {
	item := uc.FindByID(id)
	if item == nil {
		return nil, domain.ErrNotFound
	}
	prompt := fmt.Sprintf("Remove %q from the cart?", item.Title)
	if confirm == nil || !confirm(prompt) {
		return nil, domain.ErrDeclined
	}
	for i, it := range uc.items {
		if it.ID == id {
			uc.items = append(uc.items[:i], uc.items[i+1:]...)
			break
		}
	}
	return item, nil
}

// FindByID returns the matching line, or nil when the id fails the shape
// check or no line carries it. This is a lookup, not a strict accessor.
func (uc *CartUC) FindByID(id string) *domain.LineItem {
	if !domain.WellFormedItemID(id) {
		return nil
	}
	for _, it := range uc.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Exists reports whether a line with the given id is in the cart.
func (uc *CartUC) Exists(id string) bool {
	return uc.FindByID(id) != nil
}

// AdjustQty changes a line's quantity by delta, clamped so it never drops
// below 1. Returns the adjusted line, or domain.ErrNotFound.
func (uc *CartUC) AdjustQty(id string, delta int) (*domain.LineItem, error) {
	item := uc.FindByID(id)
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if q := item.Qty + delta; q >= 1 {
		item.Qty = q
	}
	return item, nil
}

// TotalQty is the sum of all quantities, 0 for an empty cart.
func (uc *CartUC) TotalQty() int {
	total := 0
	for _, it := range uc.items {
		total += it.Qty
	}
	return total
}

// TotalAmount is the sum of effective line totals, 0 for an empty cart.
func (uc *CartUC) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, it := range uc.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Items returns the lines in insertion order for rendering. Callers must not
// reorder or resize the slice.
func (uc *CartUC) Items() []*domain.LineItem {
	return uc.items
}
