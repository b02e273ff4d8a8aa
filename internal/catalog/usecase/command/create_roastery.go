package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/internal/catalog/search"
)

// CreateRoasteryCommand represents the command to create a new roastery
type CreateRoasteryCommand struct {
	ID          string
	Name        string
	Description string
	Website     string
	Location    string
	Founded     int
	Specialties []string
	LogoURL     string
	BrandColor  string
	IsPartner   bool
}

// CreateRoasteryHandler handles roastery creation
type CreateRoasteryHandler struct {
	store    domain.CatalogStore
	cache    *search.Cache
	notifier Notifier
}

// NewCreateRoasteryHandler creates a new create roastery handler
func NewCreateRoasteryHandler(store domain.CatalogStore, cache *search.Cache, notifier Notifier) *CreateRoasteryHandler {
	return &CreateRoasteryHandler{store: store, cache: cache, notifier: notifier}
}

// Handle executes the create roastery command
func (h *CreateRoasteryHandler) Handle(ctx context.Context, cmd CreateRoasteryCommand) (*domain.Roastery, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("roastery name is required")
	}

	id := cmd.ID
	if id == "" {
		id = "roast-" + uuid.NewString()
	}

	roastery := &domain.Roastery{
		ID:          id,
		Name:        cmd.Name,
		Description: cmd.Description,
		Website:     cmd.Website,
		Location:    cmd.Location,
		Founded:     cmd.Founded,
		Specialties: cmd.Specialties,
		LogoURL:     cmd.LogoURL,
		BrandColor:  cmd.BrandColor,
		IsPartner:   cmd.IsPartner,
	}

	doc, err := json.Marshal(roastery)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roastery: %w", err)
	}
	if err := h.store.Insert(ctx, domain.KindRoastery, id, doc); err != nil {
		return nil, fmt.Errorf("failed to create roastery: %w", err)
	}

	h.cache.Invalidate()
	notifyChanged(ctx, h.notifier, domain.KindRoastery, ActionCreated, id)

	return roastery, nil
}
