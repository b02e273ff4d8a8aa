package query

import (
	"context"
	"fmt"

	"github.com/beanscout/beanscout/internal/catalog/search"
)

// SearchCoffeesQuery represents one search invocation
type SearchCoffeesQuery struct {
	Term                string
	OnlyPartners        bool
	RoastLevels         []string
	ProcessingMethods   []string
	IncludeDiscontinued bool
}

// SearchCoffeesHandler handles the search query
type SearchCoffeesHandler struct {
	engine *search.Engine
}

// NewSearchCoffeesHandler creates a new search handler
func NewSearchCoffeesHandler(engine *search.Engine) *SearchCoffeesHandler {
	return &SearchCoffeesHandler{engine: engine}
}

// Handle executes the search query
func (h *SearchCoffeesHandler) Handle(ctx context.Context, q SearchCoffeesQuery) (*search.Outcome, error) {
	filters := search.Filters{
		OnlyPartners:        q.OnlyPartners,
		RoastLevels:         q.RoastLevels,
		ProcessingMethods:   q.ProcessingMethods,
		IncludeDiscontinued: q.IncludeDiscontinued,
	}

	outcome, err := h.engine.Search(ctx, q.Term, filters)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return outcome, nil
}
