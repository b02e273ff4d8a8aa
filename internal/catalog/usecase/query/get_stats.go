package query

import (
	"context"
	"fmt"

	"github.com/beanscout/beanscout/internal/catalog/search"
)

// GetStatsHandler handles the catalog statistics query
type GetStatsHandler struct {
	engine *search.Engine
}

// NewGetStatsHandler creates a new stats handler
func NewGetStatsHandler(engine *search.Engine) *GetStatsHandler {
	return &GetStatsHandler{engine: engine}
}

// Handle returns totals per record kind and the overall price range.
func (h *GetStatsHandler) Handle(ctx context.Context) (*search.CatalogStats, error) {
	stats, err := h.engine.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute catalog stats: %w", err)
	}
	return stats, nil
}
