package query

import (
	"context"
	"fmt"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

// GetProductQuery represents the query for a single product
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles single-product lookups
type GetProductHandler struct {
	store domain.CatalogStore
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(store domain.CatalogStore) *GetProductHandler {
	return &GetProductHandler{store: store}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if q.ID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	return domain.ProductByID(ctx, h.store, q.ID)
}
