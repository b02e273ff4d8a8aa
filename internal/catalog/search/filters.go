package search

import (
	"slices"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

// Filters is the post-match predicate set applied to (product, roastery)
// pairs. All predicates must pass; they are stateless and commutative, so
// application order never changes the result set.
type Filters struct {
	OnlyPartners        bool
	RoastLevels         []string
	ProcessingMethods   []string
	IncludeDiscontinued bool
}

// Match reports whether the pair survives every enabled predicate.
func (f Filters) Match(p domain.Product, r domain.Roastery) bool {
	if f.OnlyPartners && !r.IsPartner {
		return false
	}
	if len(f.RoastLevels) > 0 && !slices.Contains(f.RoastLevels, p.RoastLevel) {
		return false
	}
	if len(f.ProcessingMethods) > 0 && !slices.Contains(f.ProcessingMethods, p.Processing) {
		return false
	}
	if !f.IncludeDiscontinued && p.SaleStatus == domain.SaleStatusDiscontinued {
		return false
	}
	return true
}
