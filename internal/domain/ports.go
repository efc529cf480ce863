package domain

import "context"

// RowHandle is an opaque reference to a rendered cart row. The UI layer hands
// one out when a row is created and accepts it back for updates and removal;
// the cart never looks inside it.
type RowHandle any

// ConfirmFunc asks the user a yes/no question before a destructive action.
// The calling layer supplies it; the cart never talks to the user directly.
type ConfirmFunc func(prompt string) bool

// CartPresenter is the outbound rendering contract of the cart. A thin
// adapter drives it from state-change results; the state component itself
// performs no presentation.
type CartPresenter interface {
	// CreateRow renders a summary row for a new line item and returns the
	// handle to bind for later updates.
	CreateRow(item *LineItem) RowHandle
	// UpdateRow refreshes an existing row's quantity and price text.
	UpdateRow(handle RowHandle, qty int, priceText string)
	// RemoveRow detaches a rendered row.
	RemoveRow(handle RowHandle)
	// SetSummary updates the dropdown header: item count and the
	// currency-formatted total.
	SetSummary(count int, total string)
	// Notify shows a short-lived toast.
	Notify(n Notification)
	// Confirm asks the user to confirm a destructive action.
	Confirm(prompt string) bool
}

// CatalogRepo serves the static "recently bought" catalog.
type CatalogRepo interface {
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
}
