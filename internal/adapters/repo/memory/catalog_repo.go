package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/phenrril/vitrina/internal/domain"
)

// CatalogRepo serves the demo catalog from memory. The data is static seed
// data in display order; there is no mutation and no storage behind it.
type CatalogRepo struct {
	products []domain.Product
}

func NewCatalogRepo(products []domain.Product) *CatalogRepo {
	for i := range products {
		if products[i].ID == "" {
			products[i].ID = domain.DeriveItemID(products[i].Title, products[i].Text)
		}
	}
	return &CatalogRepo{products: products}
}

// NewSeededCatalogRepo returns the "recently bought" demo catalog.
func NewSeededCatalogRepo() *CatalogRepo {
	return NewCatalogRepo(seedProducts())
}

func (r *CatalogRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *CatalogRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func disc(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{Title: "Festive Looks", Text: "Rust Red Ribbed Velvet Long Sleeve Body Suit", Color: "Rust Red", Size: "M", Price: decimal.RequireFromString("38")},
		{Title: "Chevron Flap", Text: "Crossbody Bag", Price: decimal.RequireFromString("7.34"), Discount: disc("5.77")},
		{Title: "Evening Shimmer", Text: "Sequin Wrap Midi Dress", Color: "Champagne", Size: "S", Price: decimal.RequireFromString("24.9")},
		{Title: "Aria", Text: "Suede Ankle Boot", Color: "Taupe", Size: "38", Price: decimal.RequireFromString("59"), Discount: disc("44.25")},
		{Title: "Coastal Weave", Text: "Straw Tote With Leather Straps", Price: decimal.RequireFromString("19.99")},
		{Title: "Midnight Row", Text: "Slim Fit Stretch Denim", Color: "Indigo", Size: "30", Price: decimal.RequireFromString("32.5")},
	}
}
