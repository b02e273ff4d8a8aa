package query

import (
	"context"
	"fmt"

	"github.com/beanscout/beanscout/internal/catalog/search"
)

// FilterOptionsHandler exposes the distinct filter values present in the
// catalog, used to populate filter pickers.
type FilterOptionsHandler struct {
	engine *search.Engine
}

// NewFilterOptionsHandler creates a new filter options handler
func NewFilterOptionsHandler(engine *search.Engine) *FilterOptionsHandler {
	return &FilterOptionsHandler{engine: engine}
}

// HandleRoastLevels returns the distinct roast levels, sorted ascending.
func (h *FilterOptionsHandler) HandleRoastLevels(ctx context.Context) ([]string, error) {
	levels, err := h.engine.AvailableRoastLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect roast levels: %w", err)
	}
	return levels, nil
}

// HandleProcessingMethods returns the distinct processing methods, sorted
// ascending.
func (h *FilterOptionsHandler) HandleProcessingMethods(ctx context.Context) ([]string, error) {
	methods, err := h.engine.AvailableProcessingMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect processing methods: %w", err)
	}
	return methods, nil
}
