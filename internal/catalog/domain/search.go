package domain

// SyntheticIDPrefix marks StandardCoffee ids fabricated for products that
// have no canonical coffee linkage. The authoritative signal is the
// Synthetic tag on SearchResult; the prefix is kept for wire compatibility.
const SyntheticIDPrefix = "virtual-"

// SyntheticCoffeeID derives the deterministic id of a fabricated grouping
// record from the product it stands in for.
func SyntheticCoffeeID(productID string) string {
	return SyntheticIDPrefix + productID
}

// Listing joins a product with its owning roastery
type Listing struct {
	Product  Product  `json:"product"`
	Roastery Roastery `json:"roastery"`
}

// SearchResult pairs one StandardCoffee (real or synthesized) with every
// listing that matched the query and passed the filter policy, plus derived
// price statistics. AvgPrice is the unrounded arithmetic mean; rounding is a
// display concern.
type SearchResult struct {
	Coffee      StandardCoffee `json:"standard_coffee"`
	Synthetic   bool           `json:"synthetic"`
	Products    []Listing      `json:"products"`
	LowestPrice int64          `json:"lowest_price"`
	AvgPrice    float64        `json:"avg_price"`
	PriceRange  PriceRange     `json:"price_range"`
}

// GroupKey returns the id review aggregates are looked up under: the coffee
// id for canonical groups, the underlying product id for synthetic ones.
func (r *SearchResult) GroupKey() string {
	if r.Synthetic && len(r.Products) > 0 {
		return r.Products[0].Product.ID
	}
	return r.Coffee.ID
}
