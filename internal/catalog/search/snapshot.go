package search

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/pkg/logger"
)

// Snapshot is one full, immutable view of the catalog. Searches scan a
// snapshot in memory; the store is never touched per request.
type Snapshot struct {
	Roasteries []domain.Roastery
	Coffees    []domain.StandardCoffee
	Products   []domain.Product

	roasteryIndex map[string]int
	coffeeIndex   map[string]int
}

func newSnapshot(roasteries []domain.Roastery, coffees []domain.StandardCoffee, products []domain.Product) *Snapshot {
	snap := &Snapshot{
		Roasteries:    roasteries,
		Coffees:       coffees,
		Products:      products,
		roasteryIndex: make(map[string]int, len(roasteries)),
		coffeeIndex:   make(map[string]int, len(coffees)),
	}
	for i, r := range roasteries {
		snap.roasteryIndex[r.ID] = i
	}
	for i, c := range coffees {
		snap.coffeeIndex[c.ID] = i
	}
	return snap
}

// RoasteryByID resolves a roastery foreign key within the snapshot.
func (s *Snapshot) RoasteryByID(id string) (domain.Roastery, bool) {
	i, ok := s.roasteryIndex[id]
	if !ok {
		return domain.Roastery{}, false
	}
	return s.Roasteries[i], true
}

// CoffeeByID resolves a standard coffee foreign key within the snapshot.
func (s *Snapshot) CoffeeByID(id string) (domain.StandardCoffee, bool) {
	i, ok := s.coffeeIndex[id]
	if !ok {
		return domain.StandardCoffee{}, false
	}
	return s.Coffees[i], true
}

// Cache holds the process-wide catalog snapshot: populated on first use,
// reused until explicitly invalidated or refreshed. There is no time-based
// expiry; external writes stay invisible until a refresh.
type Cache struct {
	store domain.CatalogStore

	mu   sync.RWMutex
	snap *Snapshot
}

// NewCache creates a snapshot cache over the given store.
func NewCache(store domain.CatalogStore) *Cache {
	return &Cache{store: store}
}

// Get returns the cached snapshot, loading it from the store when empty.
// A failed load leaves the cache empty and propagates the error unmodified.
func (c *Cache) Get(ctx context.Context) (*Snapshot, error) {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}
	return c.Refresh(ctx)
}

// Refresh reloads the snapshot from the store, replacing whatever is cached.
func (c *Cache) Refresh(ctx context.Context) (*Snapshot, error) {
	snap, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	logger.Logger.Info().
		Int("roasteries", len(snap.Roasteries)).
		Int("standard_coffees", len(snap.Coffees)).
		Int("products", len(snap.Products)).
		Msg("Catalog snapshot loaded")

	return snap, nil
}

// Invalidate drops the cached snapshot; the next Get reloads lazily.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

// load fetches the three record kinds concurrently.
func (c *Cache) load(ctx context.Context) (*Snapshot, error) {
	var (
		roasteries []domain.Roastery
		coffees    []domain.StandardCoffee
		products   []domain.Product
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roasteries, err = domain.AllRoasteries(ctx, c.store)
		return err
	})
	g.Go(func() error {
		var err error
		coffees, err = domain.AllStandardCoffees(ctx, c.store)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = domain.AllProducts(ctx, c.store)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newSnapshot(roasteries, coffees, products), nil
}
