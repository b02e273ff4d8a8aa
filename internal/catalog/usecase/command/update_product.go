package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/internal/catalog/search"
)

// UpdateProductCommand represents the command to replace a product listing
type UpdateProductCommand struct {
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

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	store    domain.CatalogStore
	cache    *search.Cache
	notifier Notifier
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(store domain.CatalogStore, cache *search.Cache, notifier Notifier) *UpdateProductHandler {
	return &UpdateProductHandler{store: store, cache: cache, notifier: notifier}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
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

	existing, err := domain.ProductByID(ctx, h.store, cmd.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("product %q does not exist", cmd.ID)
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	roasteryID := cmd.RoasteryID
	if roasteryID == "" {
		roasteryID = existing.RoasteryID
	}
	if _, err := domain.RoasteryByID(ctx, h.store, roasteryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("roastery %q does not exist", roasteryID)
		}
		return nil, fmt.Errorf("failed to verify roastery: %w", err)
	}

	product := &domain.Product{
		ID:               cmd.ID,
		RoasteryID:       roasteryID,
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
	if err := h.store.Update(ctx, domain.KindProduct, cmd.ID, doc); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	h.cache.Invalidate()
	notifyChanged(ctx, h.notifier, domain.KindProduct, ActionUpdated, cmd.ID)

	return product, nil
}
