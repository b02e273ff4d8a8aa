package domain

// PriceRange is a min/max price pair in the smallest currency unit
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// StandardCoffee is the canonical, de-duplicated identity of a coffee,
// independent of any seller. Price comparison is computed per StandardCoffee.
type StandardCoffee struct {
	ID                 string     `json:"id"`
	PrimaryName        string     `json:"primary_name"`
	AlternativeNames   []string   `json:"alternative_names"`
	Origin             string     `json:"origin"`
	Region             string     `json:"region"`
	Processing         []string   `json:"processing"`
	CommonRoastLevels  []string   `json:"common_roast_levels"`
	Description        string     `json:"description"`
	CommonTastingNotes []string   `json:"common_tasting_notes"`
	AvgRating          float64    `json:"avg_rating"`
	CommonVarieties    []string   `json:"common_varieties"`
	AltitudeRange      string     `json:"altitude_range"`
	HarvestSeason      string     `json:"harvest_season"`
	TypicalPrice       PriceRange `json:"typical_price"`
}

// SearchNames returns the strings a query is matched against first:
// the primary name followed by all aliases.
func (c *StandardCoffee) SearchNames() []string {
	names := make([]string, 0, len(c.AlternativeNames)+1)
	names = append(names, c.PrimaryName)
	names = append(names, c.AlternativeNames...)
	return names
}
