package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/internal/catalog/search"
)

// DeleteProductCommand represents the command to delete a product listing
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles product deletion
type DeleteProductHandler struct {
	store    domain.CatalogStore
	cache    *search.Cache
	notifier Notifier
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(store domain.CatalogStore, cache *search.Cache, notifier Notifier) *DeleteProductHandler {
	return &DeleteProductHandler{store: store, cache: cache, notifier: notifier}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("product id is required")
	}

	if err := h.store.Delete(ctx, domain.KindProduct, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("product %q does not exist", cmd.ID)
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	h.cache.Invalidate()
	notifyChanged(ctx, h.notifier, domain.KindProduct, ActionDeleted, cmd.ID)

	return nil
}
