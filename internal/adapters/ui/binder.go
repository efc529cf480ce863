package ui

import (
	"fmt"

	"github.com/phenrril/vitrina/internal/domain"
	"github.com/phenrril/vitrina/internal/usecase"
)

// Binder wires cart state changes to a CartPresenter. It owns every
// presentation side effect: row creation and updates, the dropdown summary,
// toasts, and the removal confirmation. The cart itself stays pure.
type Binder struct {
	cart *usecase.CartUC
	view domain.CartPresenter
}

func NewBinder(cart *usecase.CartUC, view domain.CartPresenter) *Binder {
	return &Binder{cart: cart, view: view}
}

func (b *Binder) Cart() *usecase.CartUC { return b.cart }

// AddToCart handles the grid's "buy" action: a product already in the cart
// gets its quantity bumped, a new one gets a fresh row.
func (b *Binder) AddToCart(p domain.Product) {
	id := p.ID
	if id == "" {
		id = domain.DeriveItemID(p.Title, p.Text)
	}
	if b.cart.Exists(id) {
		item, _ := b.cart.AdjustQty(id, +1)
		b.view.UpdateRow(item.Row, item.Qty, domain.FormatUSD(item.Subtotal()))
		b.view.Notify(domain.Notification{
			Message:  fmt.Sprintf("Increased %s to %d", item.Title, item.Qty),
			Severity: domain.SeverityInfo,
		})
	} else {
		item, _ := b.cart.Add(p)
		item.Row = b.view.CreateRow(item)
		b.view.Notify(domain.Notification{
			Message:  fmt.Sprintf("%s added to your cart", item.Title),
			Severity: domain.SeveritySuccess,
		})
	}
	b.refreshSummary()
}

// Increment handles the cart row's "+" action.
func (b *Binder) Increment(id string) error { return b.adjust(id, +1) }

// Decrement handles the cart row's "-" action. Quantity never drops below 1.
func (b *Binder) Decrement(id string) error { return b.adjust(id, -1) }

func (b *Binder) adjust(id string, delta int) error {
	item, err := b.cart.AdjustQty(id, delta)
	if err != nil {
		b.view.Notify(domain.Notification{
			Message:  "That item is no longer in your cart",
			Severity: domain.SeverityError,
		})
		return err
	}
	b.view.UpdateRow(item.Row, item.Qty, domain.FormatUSD(item.Subtotal()))
	b.refreshSummary()
	return nil
}

// Remove handles the cart row's trash action: the presenter asks the user to
// confirm, and only then is the line dropped and its row detached. A declined
// confirmation leaves the cart exactly as it was.
func (b *Binder) Remove(id string) error {
	item, err := b.cart.Remove(id, b.view.Confirm)
	if err != nil {
		return err
	}
	b.view.RemoveRow(item.Row)
	b.view.Notify(domain.Notification{
		Message:  fmt.Sprintf("%s removed from your cart", item.Title),
		Severity: domain.SeverityWarning,
	})
	b.refreshSummary()
	return nil
}

func (b *Binder) refreshSummary() {
	b.view.SetSummary(b.cart.TotalQty(), domain.FormatUSD(b.cart.TotalAmount()))
}
