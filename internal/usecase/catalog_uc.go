package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/phenrril/vitrina/internal/domain"
)

// CatalogUC serves the static product catalog backing the storefront grid.
type CatalogUC struct {
	Products domain.CatalogRepo
}

// RecentlyBought lists the products shown on the demo page, with ids
// populated so the UI can check cart membership before adding.
func (uc *CatalogUC) RecentlyBought(ctx context.Context) ([]domain.Product, error) {
	list, err := uc.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == "" {
			list[i].ID = domain.DeriveItemID(list[i].Title, list[i].Text)
		}
	}
	return list, nil
}

// Get looks a product up by its derived id.
func (uc *CatalogUC) Get(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("empty product id")
	}
	return uc.Products.FindByID(ctx, id)
}
