package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

func TestMemoryStoreCRUD(t *testing.T) {
	store := NewMemoryCatalogStore()
	ctx := context.Background()

	doc := []byte(`{"id":"std-1"}`)
	require.NoError(t, store.Insert(ctx, domain.KindStandardCoffee, "std-1", doc))
	assert.ErrorIs(t, store.Insert(ctx, domain.KindStandardCoffee, "std-1", doc), domain.ErrAlreadyExists)

	got, err := store.GetByID(ctx, domain.KindStandardCoffee, "std-1")
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	require.NoError(t, store.Update(ctx, domain.KindStandardCoffee, "std-1", []byte(`{"id":"std-1","origin":"케냐"}`)))
	assert.ErrorIs(t, store.Update(ctx, domain.KindStandardCoffee, "missing", doc), domain.ErrNotFound)

	require.NoError(t, store.Delete(ctx, domain.KindStandardCoffee, "std-1"))
	assert.ErrorIs(t, store.Delete(ctx, domain.KindStandardCoffee, "std-1"), domain.ErrNotFound)
}

func TestMemoryStoreGetAllSorted(t *testing.T) {
	store := NewMemoryCatalogStore()
	ctx := context.Background()

	require.NoError(t, store.Seed(domain.KindProduct, "b", domain.Product{ID: "b"}))
	require.NoError(t, store.Seed(domain.KindProduct, "a", domain.Product{ID: "a"}))
	require.NoError(t, store.Seed(domain.KindProduct, "c", domain.Product{ID: "c"}))

	products, err := domain.AllProducts(ctx, store)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "b", products[1].ID)
	assert.Equal(t, "c", products[2].ID)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryCatalogStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, domain.KindProduct, "p1", []byte(`{"id":"p1"}`)))

	got, err := store.GetByID(ctx, domain.KindProduct, "p1")
	require.NoError(t, err)
	got[0] = 'X'

	again, err := store.GetByID(ctx, domain.KindProduct, "p1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"p1"}`), again)
}
