package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("not found")
	ErrDeclined = errors.New("removal declined")
)

// Product is a read-only catalog entry. ID may be empty on seed data; it is
// derived from Title and Text the first time the product enters a cart.
type Product struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Text     string           `json:"text"`
	Color    string           `json:"color,omitempty"`
	Size     string           `json:"size,omitempty"`
	Price    decimal.Decimal  `json:"price"`
	Discount *decimal.Decimal `json:"discount,omitempty"`
}

// LineItem is one product held in the cart with its own quantity.
type LineItem struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Text     string           `json:"text"`
	Color    string           `json:"color,omitempty"`
	Size     string           `json:"size,omitempty"`
	Price    decimal.Decimal  `json:"price"`
	Discount *decimal.Decimal `json:"discount,omitempty"`
	Qty      int              `json:"qty"`

	// Row is the presentation handle for this item's rendered summary row.
	// It is owned by the UI layer; the cart only carries it so the row can
	// be updated or detached later.
	Row RowHandle `json:"-"`
}

// NewLineItem builds the initial line for a product entering the cart.
func NewLineItem(p Product) *LineItem {
	id := p.ID
	if id == "" {
		id = DeriveItemID(p.Title, p.Text)
	}
	return &LineItem{
		ID:       id,
		Title:    p.Title,
		Text:     p.Text,
		Color:    p.Color,
		Size:     p.Size,
		Price:    p.Price,
		Discount: p.Discount,
		Qty:      1,
	}
}

// UnitPrice is the effective per-unit price: the discount when present,
// the original price otherwise. A zero-value price contributes 0.
func (li *LineItem) UnitPrice() decimal.Decimal {
	if li.Discount != nil {
		return *li.Discount
	}
	return li.Price
}

// Subtotal is the effective line total.
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice().Mul(decimal.NewFromInt(int64(li.Qty)))
}
