package domain

// Roastery represents a coffee seller/roaster
type Roastery struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Location    string   `json:"location"`
	Founded     int      `json:"founded"`
	Specialties []string `json:"specialties"`
	LogoURL     string   `json:"logo_url"`
	BrandColor  string   `json:"brand_color"`
	IsPartner   bool     `json:"is_partner"`
}
