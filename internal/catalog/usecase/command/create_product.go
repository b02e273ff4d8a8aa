package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/internal/catalog/search"
)

// CreateProductCommand represents the command to create a new product listing
type CreateProductCommand struct {
	ID               string
	RoasteryID       string
	Name             string
	StandardCoffeeID string
	Origin           string
	Region           string
	Farm             string
	Processing       string
	RoastLevel       string
	Description      string
	Price            int64
	Weight           string
	URL              string
	InStock          bool
	SaleStatus       string
	TastingNotes     []string
	Altitude         string
	Variety          string
}

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	store    domain.CatalogStore
	cache    *search.Cache
	notifier Notifier
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(store domain.CatalogStore, cache *search.Cache, notifier Notifier) *CreateProductHandler {
	return &CreateProductHandler{store: store, cache: cache, notifier: notifier}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.RoasteryID == "" {
		return nil, fmt.Errorf("roastery id is required")
	}
	if cmd.Price <= 0 {
		return nil, fmt.Errorf("price must be positive")
	}

	status := domain.SaleStatus(cmd.SaleStatus)
	if status == "" {
		status = domain.SaleStatusActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown sale status %q", cmd.SaleStatus)
	}

	// The owning roastery must exist; the standard coffee linkage is a weak
	// reference and is not verified.
	if _, err := domain.RoasteryByID(ctx, h.store, cmd.RoasteryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("roastery %q does not exist", cmd.RoasteryID)
		}
		return nil, fmt.Errorf("failed to verify roastery: %w", err)
	}

	id := cmd.ID
	if id == "" {
		id = "prod-" + uuid.NewString()
	}

	product := &domain.Product{
		ID:               id,
		RoasteryID:       cmd.RoasteryID,
		Name:             cmd.Name,
		StandardCoffeeID: cmd.StandardCoffeeID,
		Origin:           cmd.Origin,
		Region:           cmd.Region,
		Farm:             cmd.Farm,
		Processing:       cmd.Processing,
		RoastLevel:       cmd.RoastLevel,
		Description:      cmd.Description,
		Price:            cmd.Price,
		Weight:           cmd.Weight,
		URL:              cmd.URL,
		InStock:          cmd.InStock,
		SaleStatus:       status,
		LastUpdated:      time.Now(),
		TastingNotes:     cmd.TastingNotes,
		Altitude:         cmd.Altitude,
		Variety:          cmd.Variety,
	}

	doc, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product: %w", err)
	}
	if err := h.store.Insert(ctx, domain.KindProduct, id, doc); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	h.cache.Invalidate()
	notifyChanged(ctx, h.notifier, domain.KindProduct, ActionCreated, id)

	return product, nil
}
