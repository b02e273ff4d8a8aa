package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/internal/catalog/search"
)

// CreateStandardCoffeeCommand represents the command to create a canonical
// coffee record
type CreateStandardCoffeeCommand struct {
	ID                 string
	PrimaryName        string
	AlternativeNames   []string
	Origin             string
	Region             string
	Processing         []string
	CommonRoastLevels  []string
	Description        string
	CommonTastingNotes []string
	CommonVarieties    []string
	AltitudeRange      string
	HarvestSeason      string
	TypicalPrice       domain.PriceRange
}

// CreateStandardCoffeeHandler handles standard coffee creation
type CreateStandardCoffeeHandler struct {
	store    domain.CatalogStore
	cache    *search.Cache
	notifier Notifier
}

// NewCreateStandardCoffeeHandler creates a new create standard coffee handler
func NewCreateStandardCoffeeHandler(store domain.CatalogStore, cache *search.Cache, notifier Notifier) *CreateStandardCoffeeHandler {
	return &CreateStandardCoffeeHandler{store: store, cache: cache, notifier: notifier}
}

// Handle executes the create standard coffee command
func (h *CreateStandardCoffeeHandler) Handle(ctx context.Context, cmd CreateStandardCoffeeCommand) (*domain.StandardCoffee, error) {
	if cmd.PrimaryName == "" {
		return nil, fmt.Errorf("primary name is required")
	}
	if cmd.Origin == "" {
		return nil, fmt.Errorf("origin is required")
	}

	id := cmd.ID
	if id == "" {
		id = "std-" + uuid.NewString()
	}

	coffee := &domain.StandardCoffee{
		ID:                 id,
		PrimaryName:        cmd.PrimaryName,
		AlternativeNames:   cmd.AlternativeNames,
		Origin:             cmd.Origin,
		Region:             cmd.Region,
		Processing:         cmd.Processing,
		CommonRoastLevels:  cmd.CommonRoastLevels,
		Description:        cmd.Description,
		CommonTastingNotes: cmd.CommonTastingNotes,
		CommonVarieties:    cmd.CommonVarieties,
		AltitudeRange:      cmd.AltitudeRange,
		HarvestSeason:      cmd.HarvestSeason,
		TypicalPrice:       cmd.TypicalPrice,
	}

	doc, err := json.Marshal(coffee)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal standard coffee: %w", err)
	}
	if err := h.store.Insert(ctx, domain.KindStandardCoffee, id, doc); err != nil {
		return nil, fmt.Errorf("failed to create standard coffee: %w", err)
	}

	h.cache.Invalidate()
	notifyChanged(ctx, h.notifier, domain.KindStandardCoffee, ActionCreated, id)

	return coffee, nil
}
