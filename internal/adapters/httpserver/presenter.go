package httpserver

import (
	"github.com/shopspring/decimal"

	"github.com/phenrril/vitrina/internal/domain"
)

// cartRow is the rendered summary row for one line item. A pointer to it is
// the opaque handle the binder holds onto.
type cartRow struct {
	ID        string
	Title     string
	Text      string
	Color     string
	Size      string
	Qty       int
	PriceText string // effective line total
	UnitText  string // effective unit price
	WasText   string // original unit price, shown struck through when discounted
}

// pageView is the server-side rendition of the cart widget: the dropdown rows
// in insertion order, the summary fields, and the pending toast queue. It
// implements domain.CartPresenter; the templates read it, never mutate it.
type pageView struct {
	rows   []*cartRow
	count  int
	total  string
	toasts []domain.Notification

	// confirmNext carries the user's answer for the request currently being
	// handled. The remove handler sets it from the confirmation form before
	// invoking the binder.
	confirmNext bool
}

func newPageView() *pageView {
	return &pageView{total: domain.FormatUSD(decimal.Zero)}
}

func (v *pageView) CreateRow(item *domain.LineItem) domain.RowHandle {
	row := &cartRow{
		ID:        item.ID,
		Title:     item.Title,
		Text:      item.Text,
		Color:     item.Color,
		Size:      item.Size,
		Qty:       item.Qty,
		PriceText: domain.FormatUSD(item.Subtotal()),
		UnitText:  domain.FormatUSD(item.UnitPrice()),
	}
	if item.Discount != nil {
		row.WasText = domain.FormatUSD(item.Price)
	}
	v.rows = append(v.rows, row)
	return row
}

func (v *pageView) UpdateRow(handle domain.RowHandle, qty int, priceText string) {
	row, ok := handle.(*cartRow)
	if !ok {
		return
	}
	row.Qty = qty
	row.PriceText = priceText
}

func (v *pageView) RemoveRow(handle domain.RowHandle) {
	row, ok := handle.(*cartRow)
	if !ok {
		return
	}
	for i, r := range v.rows {
		if r == row {
			v.rows = append(v.rows[:i], v.rows[i+1:]...)
			return
		}
	}
}

func (v *pageView) SetSummary(count int, total string) {
	v.count = count
	v.total = total
}

func (v *pageView) Notify(n domain.Notification) {
	v.toasts = append(v.toasts, n)
}

func (v *pageView) Confirm(string) bool {
	return v.confirmNext
}

// drainToasts hands the queued toasts to the next render and clears them,
// flash style.
func (v *pageView) drainToasts() []domain.Notification {
	t := v.toasts
	v.toasts = nil
	return t
}
