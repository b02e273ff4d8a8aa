package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/internal/catalog/search"
	"github.com/beanscout/beanscout/pkg/logger"
)

// DeleteRoasteryCommand represents the command to delete a roastery
type DeleteRoasteryCommand struct {
	ID string
}

// DeleteRoasteryHandler handles roastery deletion. Deletion does not cascade:
// listings that still reference the roastery become dangling and are dropped
// from search results until cleaned up.
type DeleteRoasteryHandler struct {
	store    domain.CatalogStore
	cache    *search.Cache
	notifier Notifier
}

// NewDeleteRoasteryHandler creates a new delete roastery handler
func NewDeleteRoasteryHandler(store domain.CatalogStore, cache *search.Cache, notifier Notifier) *DeleteRoasteryHandler {
	return &DeleteRoasteryHandler{store: store, cache: cache, notifier: notifier}
}

// Handle executes the delete roastery command
func (h *DeleteRoasteryHandler) Handle(ctx context.Context, cmd DeleteRoasteryCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("roastery id is required")
	}

	if err := h.store.Delete(ctx, domain.KindRoastery, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("roastery %q does not exist", cmd.ID)
		}
		return fmt.Errorf("failed to delete roastery: %w", err)
	}

	if products, err := domain.AllProducts(ctx, h.store); err == nil {
		orphaned := 0
		for _, p := range products {
			if p.RoasteryID == cmd.ID {
				orphaned++
			}
		}
		if orphaned > 0 {
			logger.Warn(ctx).
				Str("roastery_id", cmd.ID).
				Int("orphaned_products", orphaned).
				Msg("Deleted roastery still referenced by products")
		}
	}

	h.cache.Invalidate()
	notifyChanged(ctx, h.notifier, domain.KindRoastery, ActionDeleted, cmd.ID)

	return nil
}
