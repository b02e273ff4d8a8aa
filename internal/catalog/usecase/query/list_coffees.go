package query

import (
	"context"
	"fmt"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

// ListStandardCoffeesHandler handles the canonical coffee listing query
type ListStandardCoffeesHandler struct {
	store domain.CatalogStore
}

// NewListStandardCoffeesHandler creates a new list standard coffees handler
func NewListStandardCoffeesHandler(store domain.CatalogStore) *ListStandardCoffeesHandler {
	return &ListStandardCoffeesHandler{store: store}
}

// Handle returns every standard coffee in the catalog.
func (h *ListStandardCoffeesHandler) Handle(ctx context.Context) ([]domain.StandardCoffee, error) {
	coffees, err := domain.AllStandardCoffees(ctx, h.store)
	if err != nil {
		return nil, fmt.Errorf("failed to list standard coffees: %w", err)
	}
	return coffees, nil
}
