package query

import (
	"context"
	"fmt"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

// ListRoasteriesHandler handles the roastery listing query
type ListRoasteriesHandler struct {
	store domain.CatalogStore
}

// NewListRoasteriesHandler creates a new list roasteries handler
func NewListRoasteriesHandler(store domain.CatalogStore) *ListRoasteriesHandler {
	return &ListRoasteriesHandler{store: store}
}

// Handle returns every roastery in the catalog.
func (h *ListRoasteriesHandler) Handle(ctx context.Context) ([]domain.Roastery, error) {
	roasteries, err := domain.AllRoasteries(ctx, h.store)
	if err != nil {
		return nil, fmt.Errorf("failed to list roasteries: %w", err)
	}
	return roasteries, nil
}
