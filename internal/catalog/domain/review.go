package domain

// ReviewStats is an external review aggregate keyed by StandardCoffee or
// Product id. It is consumed as-is, never computed here.
type ReviewStats struct {
	AvgRating  float64        `json:"avg_rating"`
	TotalCount int            `json:"total_count"`
	Histogram  map[string]int `json:"histogram"`
}
