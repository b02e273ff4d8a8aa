package search

import (
	"context"
	"sort"
	"strings"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

// Engine groups matching product listings under standard coffees and
// computes price statistics per group. It owns no state beyond the injected
// snapshot cache, so it is safe for concurrent use.
type Engine struct {
	cache *Cache
}

// NewEngine creates a search engine over the given snapshot cache.
func NewEngine(cache *Cache) *Engine {
	return &Engine{cache: cache}
}

// Outcome is the full result of one search: the ordered groups plus the ids
// of products that were silently excluded because their roastery or standard
// coffee reference dangles.
type Outcome struct {
	Results         []domain.SearchResult `json:"results"`
	SkippedProducts []string              `json:"skipped_products,omitempty"`
}

// CatalogStats summarizes the cached snapshot.
type CatalogStats struct {
	TotalRoasteries      int               `json:"total_roasteries"`
	TotalStandardCoffees int               `json:"total_standard_coffees"`
	TotalProducts        int               `json:"total_products"`
	PriceRange           domain.PriceRange `json:"price_range"`
}

// Search runs the three-phase aggregation over the cached snapshot.
//
// Phase 1 matches standard coffees by name (then origin/region) and gathers
// every in-stock listing linked to them. Phase 2 matches at most one roastery
// by name and groups that roastery's remaining listings, fabricating
// synthetic groups for listings with no coffee linkage. Phase 3 runs only
// when no roastery matched and turns directly-matched leftover listings into
// synthetic singleton groups. A visited set guarantees each standard coffee
// emits at most one group and each product appears in at most one group.
func (e *Engine) Search(ctx context.Context, query string, filters Filters) (*Outcome, error) {
	if strings.TrimSpace(query) == "" {
		return &Outcome{}, nil
	}

	snap, err := e.cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}
	visited := make(map[string]struct{})

	e.matchStandardCoffees(snap, query, filters, visited, out)

	roastery := e.matchRoastery(snap, query, filters)
	if roastery != nil {
		e.groupRoasteryListings(snap, *roastery, filters, visited, out)
	} else {
		e.matchProductsDirect(snap, query, filters, visited, out)
	}

	// Canonical groups before synthetic ones, then cheapest first. Ties keep
	// enumeration order.
	sort.SliceStable(out.Results, func(i, j int) bool {
		a, b := out.Results[i], out.Results[j]
		if a.Synthetic != b.Synthetic {
			return !a.Synthetic
		}
		return a.LowestPrice < b.LowestPrice
	})

	return out, nil
}

// matchStandardCoffees is phase 1: coffee-first matching. The name match
// takes priority; origin/region is only consulted when no name matched.
func (e *Engine) matchStandardCoffees(snap *Snapshot, query string, filters Filters, visited map[string]struct{}, out *Outcome) {
	for _, coffee := range snap.Coffees {
		if _, seen := visited[coffee.ID]; seen {
			continue
		}

		if !Matches(query, coffee.SearchNames()) &&
			!Matches(query, []string{coffee.Origin, coffee.Region}) {
			continue
		}

		listings := e.listingsForCoffee(snap, coffee.ID, filters, out)
		if len(listings) == 0 {
			continue
		}

		out.Results = append(out.Results, buildResult(coffee, false, listings))
		visited[coffee.ID] = struct{}{}
	}
}

// listingsForCoffee gathers every in-stock listing linked to the coffee,
// joined with its roastery and filtered. Listings whose roastery is gone are
// excluded and recorded as skipped.
func (e *Engine) listingsForCoffee(snap *Snapshot, coffeeID string, filters Filters, out *Outcome) []domain.Listing {
	var listings []domain.Listing
	for _, p := range snap.Products {
		if p.StandardCoffeeID != coffeeID || !p.IsAvailable() {
			continue
		}
		roastery, ok := snap.RoasteryByID(p.RoasteryID)
		if !ok {
			out.SkippedProducts = append(out.SkippedProducts, p.ID)
			continue
		}
		if !filters.Match(p, roastery) {
			continue
		}
		listings = append(listings, domain.Listing{Product: p, Roastery: roastery})
	}
	return listings
}

// matchRoastery is the phase 2 selection step: the first roastery whose name
// matches the query. The partner-only filter applies here; the remaining
// filters apply to the product list afterwards.
func (e *Engine) matchRoastery(snap *Snapshot, query string, filters Filters) *domain.Roastery {
	for i := range snap.Roasteries {
		r := &snap.Roasteries[i]
		if !Matches(query, []string{r.Name}) {
			continue
		}
		if filters.OnlyPartners && !r.IsPartner {
			continue
		}
		return r
	}
	return nil
}

// groupRoasteryListings is phase 2 proper: the matched roastery's in-stock
// listings, partitioned by standard coffee id. Groups are scoped to this one
// roastery; listings without a linkage become synthetic singletons.
func (e *Engine) groupRoasteryListings(snap *Snapshot, roastery domain.Roastery, filters Filters, visited map[string]struct{}, out *Outcome) {
	grouped := make(map[string][]domain.Product)
	var groupOrder []string
	var unlinked []domain.Product

	for _, p := range snap.Products {
		if p.RoasteryID != roastery.ID || !p.IsAvailable() {
			continue
		}
		if p.StandardCoffeeID != "" {
			if _, seen := visited[p.StandardCoffeeID]; seen {
				continue
			}
		}
		if !filters.Match(p, roastery) {
			continue
		}

		if p.StandardCoffeeID == "" {
			unlinked = append(unlinked, p)
			continue
		}
		if _, ok := grouped[p.StandardCoffeeID]; !ok {
			groupOrder = append(groupOrder, p.StandardCoffeeID)
		}
		grouped[p.StandardCoffeeID] = append(grouped[p.StandardCoffeeID], p)
	}

	for _, coffeeID := range groupOrder {
		coffee, ok := snap.CoffeeByID(coffeeID)
		if !ok {
			// Stale linkage: the coffee record is gone.
			for _, p := range grouped[coffeeID] {
				out.SkippedProducts = append(out.SkippedProducts, p.ID)
			}
			continue
		}

		listings := make([]domain.Listing, 0, len(grouped[coffeeID]))
		for _, p := range grouped[coffeeID] {
			listings = append(listings, domain.Listing{Product: p, Roastery: roastery})
		}

		out.Results = append(out.Results, buildResult(coffee, false, listings))
		visited[coffeeID] = struct{}{}
	}

	for _, p := range unlinked {
		listing := domain.Listing{Product: p, Roastery: roastery}
		out.Results = append(out.Results, buildResult(syntheticCoffee(p), true, []domain.Listing{listing}))
	}
}

// matchProductsDirect is phase 3: only reached when no roastery matched.
// Every remaining listing matching on its own name or farm becomes a
// synthetic singleton group.
func (e *Engine) matchProductsDirect(snap *Snapshot, query string, filters Filters, visited map[string]struct{}, out *Outcome) {
	for _, p := range snap.Products {
		if !p.IsAvailable() {
			continue
		}
		if p.StandardCoffeeID != "" {
			if _, seen := visited[p.StandardCoffeeID]; seen {
				continue
			}
		}
		if !Matches(query, []string{p.Name, p.Farm}) {
			continue
		}
		roastery, ok := snap.RoasteryByID(p.RoasteryID)
		if !ok {
			out.SkippedProducts = append(out.SkippedProducts, p.ID)
			continue
		}
		if !filters.Match(p, roastery) {
			continue
		}

		listing := domain.Listing{Product: p, Roastery: roastery}
		out.Results = append(out.Results, buildResult(syntheticCoffee(p), true, []domain.Listing{listing}))
	}
}

// AvailableRoastLevels returns the distinct roast levels across all
// products, sorted ascending.
func (e *Engine) AvailableRoastLevels(ctx context.Context) ([]string, error) {
	snap, err := e.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(snap.Products, func(p domain.Product) string { return p.RoastLevel }), nil
}

// AvailableProcessingMethods returns the distinct processing methods across
// all products, sorted ascending.
func (e *Engine) AvailableProcessingMethods(ctx context.Context) ([]string, error) {
	snap, err := e.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(snap.Products, func(p domain.Product) string { return p.Processing }), nil
}

// Stats summarizes the cached snapshot.
func (e *Engine) Stats(ctx context.Context) (*CatalogStats, error) {
	snap, err := e.cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	stats := &CatalogStats{
		TotalRoasteries:      len(snap.Roasteries),
		TotalStandardCoffees: len(snap.Coffees),
		TotalProducts:        len(snap.Products),
	}
	for i, p := range snap.Products {
		if i == 0 || p.Price < stats.PriceRange.Min {
			stats.PriceRange.Min = p.Price
		}
		if p.Price > stats.PriceRange.Max {
			stats.PriceRange.Max = p.Price
		}
	}
	return stats, nil
}

// Refresh reloads the underlying snapshot.
func (e *Engine) Refresh(ctx context.Context) error {
	_, err := e.cache.Refresh(ctx)
	return err
}

func distinct(products []domain.Product, key func(domain.Product) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, p := range products {
		v := key(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// buildResult computes the price statistics for one emitted group.
func buildResult(coffee domain.StandardCoffee, synthetic bool, listings []domain.Listing) domain.SearchResult {
	lowest := listings[0].Product.Price
	highest := lowest
	var sum int64
	for _, l := range listings {
		price := l.Product.Price
		if price < lowest {
			lowest = price
		}
		if price > highest {
			highest = price
		}
		sum += price
	}

	return domain.SearchResult{
		Coffee:      coffee,
		Synthetic:   synthetic,
		Products:    listings,
		LowestPrice: lowest,
		AvgPrice:    float64(sum) / float64(len(listings)),
		PriceRange:  domain.PriceRange{Min: lowest, Max: highest},
	}
}

// syntheticCoffee fabricates a transient grouping record from a listing that
// has no canonical coffee, carrying the product's own attributes.
func syntheticCoffee(p domain.Product) domain.StandardCoffee {
	var varieties []string
	if p.Variety != "" {
		varieties = []string{p.Variety}
	}

	return domain.StandardCoffee{
		ID:                 domain.SyntheticCoffeeID(p.ID),
		PrimaryName:        p.Name,
		Origin:             p.Origin,
		Region:             p.Region,
		Processing:         []string{p.Processing},
		CommonRoastLevels:  []string{p.RoastLevel},
		Description:        p.Description,
		CommonTastingNotes: p.TastingNotes,
		CommonVarieties:    varieties,
		AltitudeRange:      p.Altitude,
		TypicalPrice:       domain.PriceRange{Min: p.Price, Max: p.Price},
	}
}
