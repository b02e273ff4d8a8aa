package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Kind identifies one of the three record types held in the catalog store
type Kind string

const (
	KindRoastery       Kind = "roastery"
	KindStandardCoffee Kind = "standard_coffee"
	KindProduct        Kind = "product"
)

// ErrNotFound is returned by GetByID when no document exists under the id.
var ErrNotFound = errors.New("catalog: document not found")

// ErrAlreadyExists is returned by Insert when the id is taken.
var ErrAlreadyExists = errors.New("catalog: document already exists")

// CatalogStore defines the contract for catalog data access. Records are
// schema-less JSON documents addressed by kind and id; there is no query
// language beyond that, so all matching happens over full snapshots.
type CatalogStore interface {
	GetAll(ctx context.Context, kind Kind) ([][]byte, error)
	GetByID(ctx context.Context, kind Kind, id string) ([]byte, error)
	Insert(ctx context.Context, kind Kind, id string, doc []byte) error
	Update(ctx context.Context, kind Kind, id string, doc []byte) error
	Delete(ctx context.Context, kind Kind, id string) error
}

func decodeAll[T any](ctx context.Context, store CatalogStore, kind Kind) ([]T, error) {
	docs, err := store.GetAll(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s documents: %w", kind, err)
	}

	records := make([]T, 0, len(docs))
	for _, doc := range docs {
		var record T
		if err := json.Unmarshal(doc, &record); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", kind, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func decodeOne[T any](ctx context.Context, store CatalogStore, kind Kind, id string) (*T, error) {
	doc, err := store.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	var record T
	if err := json.Unmarshal(doc, &record); err != nil {
		return nil, fmt.Errorf("failed to decode %s %q: %w", kind, id, err)
	}
	return &record, nil
}

// AllRoasteries loads and decodes every roastery document.
func AllRoasteries(ctx context.Context, store CatalogStore) ([]Roastery, error) {
	return decodeAll[Roastery](ctx, store, KindRoastery)
}

// AllStandardCoffees loads and decodes every standard coffee document.
func AllStandardCoffees(ctx context.Context, store CatalogStore) ([]StandardCoffee, error) {
	return decodeAll[StandardCoffee](ctx, store, KindStandardCoffee)
}

// AllProducts loads and decodes every product document.
func AllProducts(ctx context.Context, store CatalogStore) ([]Product, error) {
	return decodeAll[Product](ctx, store, KindProduct)
}

// RoasteryByID loads a single roastery, ErrNotFound when absent.
func RoasteryByID(ctx context.Context, store CatalogStore, id string) (*Roastery, error) {
	return decodeOne[Roastery](ctx, store, KindRoastery, id)
}

// StandardCoffeeByID loads a single standard coffee, ErrNotFound when absent.
func StandardCoffeeByID(ctx context.Context, store CatalogStore, id string) (*StandardCoffee, error) {
	return decodeOne[StandardCoffee](ctx, store, KindStandardCoffee, id)
}

// ProductByID loads a single product, ErrNotFound when absent.
func ProductByID(ctx context.Context, store CatalogStore, id string) (*Product, error) {
	return decodeOne[Product](ctx, store, KindProduct, id)
}
