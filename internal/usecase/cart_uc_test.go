package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/phenrril/vitrina/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func yes(string) bool { return true }
func no(string) bool  { return false }

var (
	bodySuit = domain.Product{
		Title: "Festive Looks",
		Text:  "Rust Red Ribbed Velvet Long Sleeve Body Suit",
		Price: dec("38"),
	}
	crossbody = func() domain.Product {
		d := dec("5.77")
		return domain.Product{
			Title:    "Chevron Flap",
			Text:     "Crossbody Bag",
			Price:    dec("7.34"),
			Discount: &d,
		}
	}()
)

func TestCartEmptyTotals(t *testing.T) {
	uc := NewCartUC()
	assert.Equal(t, 0, uc.TotalQty())
	assert.True(t, uc.TotalAmount().IsZero())
}

func TestCartAddDerivesID(t *testing.T) {
	uc := NewCartUC()
	item, created := uc.Add(bodySuit)
	require.True(t, created)
	assert.Equal(t, "item-e5c42ee6114ed3742ba1772680910d96", item.ID)
	assert.Equal(t, 1, item.Qty)
}

func TestCartAddMergesDuplicate(t *testing.T) {
	uc := NewCartUC()
	first, created := uc.Add(bodySuit)
	require.True(t, created)

	second, created := uc.Add(bodySuit)
	assert.False(t, created)
	assert.Same(t, first, second)
	assert.Equal(t, 2, second.Qty)
	assert.Len(t, uc.Items(), 1)
}

func TestCartAdjustQtyClampsAtOne(t *testing.T) {
	uc := NewCartUC()
	item, _ := uc.Add(bodySuit)

	adjusted, err := uc.AdjustQty(item.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, adjusted.Qty)

	_, err = uc.AdjustQty(item.ID, +1)
	require.NoError(t, err)
	adjusted, err = uc.AdjustQty(item.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, adjusted.Qty)
}

func TestCartAdjustQtyUnknown(t *testing.T) {
	uc := NewCartUC()
	_, err := uc.AdjustQty("item-00000000000000000000000000000000", +1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCartFindByIDShapeCheck(t *testing.T) {
	uc := NewCartUC()
	item, _ := uc.Add(crossbody)

	assert.Same(t, item, uc.FindByID(item.ID))
	assert.Nil(t, uc.FindByID("short"))
	assert.Nil(t, uc.FindByID(""))
	assert.Nil(t, uc.FindByID("item-ffffffffffffffffffffffffffffffff"))
	assert.True(t, uc.Exists(item.ID))
	assert.False(t, uc.Exists("item-ffffffffffffffffffffffffffffffff"))
}

func TestCartTotalAmountUsesDiscount(t *testing.T) {
	uc := NewCartUC()
	uc.Add(crossbody)
	assert.True(t, uc.TotalAmount().Equal(dec("5.77")),
		"got %s", uc.TotalAmount())
}

func TestCartRemoveUnknownLeavesTotals(t *testing.T) {
	uc := NewCartUC()
	uc.Add(bodySuit)

	_, err := uc.Remove("item-00000000000000000000000000000000", yes)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, uc.TotalQty())
	assert.True(t, uc.TotalAmount().Equal(dec("38")))
}

func TestCartRemoveDeclined(t *testing.T) {
	uc := NewCartUC()
	item, _ := uc.Add(bodySuit)

	_, err := uc.Remove(item.ID, no)
	assert.ErrorIs(t, err, domain.ErrDeclined)
	assert.Equal(t, 1, uc.TotalQty())

	_, err = uc.Remove(item.ID, nil)
	assert.ErrorIs(t, err, domain.ErrDeclined)
	assert.Equal(t, 1, uc.TotalQty())
}

func TestCartScenario(t *testing.T) {
	uc := NewCartUC()

	first, created := uc.Add(bodySuit)
	require.True(t, created)
	assert.Equal(t, 1, uc.TotalQty())
	assert.True(t, uc.TotalAmount().Equal(dec("38")), "got %s", uc.TotalAmount())

	_, created = uc.Add(crossbody)
	require.True(t, created)
	assert.Equal(t, 2, uc.TotalQty())
	assert.True(t, uc.TotalAmount().Equal(dec("43.77")), "got %s", uc.TotalAmount())

	_, err := uc.AdjustQty(first.ID, +1)
	require.NoError(t, err)
	assert.Equal(t, 3, uc.TotalQty())
	assert.True(t, uc.TotalAmount().Equal(dec("81.77")), "got %s", uc.TotalAmount())

	removed, err := uc.Remove(first.ID, yes)
	require.NoError(t, err)
	assert.Equal(t, "Festive Looks", removed.Title)
	assert.Equal(t, 1, uc.TotalQty())
	assert.True(t, uc.TotalAmount().Equal(dec("5.77")), "got %s", uc.TotalAmount())
}

// TestCartInvariants drives the cart with random operations against a model
// map and checks the uniqueness, quantity and aggregation invariants after
// every step.
func TestCartInvariants(t *testing.T) {
	pool := []domain.Product{bodySuit, crossbody,
		{Title: "Evening Shimmer", Text: "Sequin Wrap Midi Dress", Price: dec("24.9")},
		{Title: "Aria", Text: "Suede Ankle Boot", Price: dec("59")},
	}

	rapid.Check(t, func(t *rapid.T) {
		uc := NewCartUC()
		model := map[string]int{}

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			p := rapid.SampledFrom(pool).Draw(t, "product")
			id := domain.DeriveItemID(p.Title, p.Text)

			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				uc.Add(p)
				model[id]++
			case 1:
				if _, err := uc.AdjustQty(id, +1); err == nil {
					model[id]++
				}
			case 2:
				if _, err := uc.AdjustQty(id, -1); err == nil && model[id] > 1 {
					model[id]--
				}
			case 3:
				if _, err := uc.Remove(id, yes); err == nil {
					delete(model, id)
				}
			}

			seen := map[string]bool{}
			wantQty := 0
			wantAmount := decimal.Zero
			for _, it := range uc.Items() {
				if seen[it.ID] {
					t.Fatalf("duplicate line for id %s", it.ID)
				}
				seen[it.ID] = true
				if it.Qty < 1 {
					t.Fatalf("line %s has qty %d", it.ID, it.Qty)
				}
				if model[it.ID] != it.Qty {
					t.Fatalf("line %s qty %d, model says %d", it.ID, it.Qty, model[it.ID])
				}
				wantQty += it.Qty
				wantAmount = wantAmount.Add(it.UnitPrice().Mul(decimal.NewFromInt(int64(it.Qty))))
			}
			if len(seen) != len(model) {
				t.Fatalf("cart has %d lines, model has %d", len(seen), len(model))
			}
			if uc.TotalQty() != wantQty {
				t.Fatalf("TotalQty %d, want %d", uc.TotalQty(), wantQty)
			}
			if !uc.TotalAmount().Equal(wantAmount) {
				t.Fatalf("TotalAmount %s, want %s", uc.TotalAmount(), wantAmount)
			}
		}
	})
}
