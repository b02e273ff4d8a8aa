package domain

import "time"

// SaleStatus is the lifecycle state of a product listing
type SaleStatus string

const (
	SaleStatusActive       SaleStatus = "active"
	SaleStatusLimited      SaleStatus = "limited"
	SaleStatusDiscontinued SaleStatus = "discontinued"
)

// Valid reports whether s is one of the known sale statuses.
func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusActive, SaleStatusLimited, SaleStatusDiscontinued:
		return true
	}
	return false
}

// Product is one roastery's concrete, priced listing of a coffee.
// StandardCoffeeID is a weak reference: it may be empty (the listing has not
// been reconciled to a canonical coffee) or stale (the coffee was deleted).
type Product struct {
	ID               string     `json:"id"`
	RoasteryID       string     `json:"roastery_id"`
	Name             string     `json:"name"`
	StandardCoffeeID string     `json:"standard_coffee_id,omitempty"`
	Origin           string     `json:"origin"`
	Region           string     `json:"region"`
	Farm             string     `json:"farm,omitempty"`
	Processing       string     `json:"processing"`
	RoastLevel       string     `json:"roast_level"`
	Description      string     `json:"description"`
	Price            int64      `json:"price"`
	Weight           string     `json:"weight"`
	URL              string     `json:"url"`
	InStock          bool       `json:"in_stock"`
	SaleStatus       SaleStatus `json:"sale_status"`
	LastUpdated      time.Time  `json:"last_updated"`
	TastingNotes     []string   `json:"tasting_notes"`
	Altitude         string     `json:"altitude,omitempty"`
	Variety          string     `json:"variety,omitempty"`
}

// IsAvailable checks if the listing can appear in search results at all
func (p *Product) IsAvailable() bool {
	return p.InStock
}
