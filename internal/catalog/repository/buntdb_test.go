package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

func newBuntDBStore(t *testing.T) *BuntDBCatalogStore {
	t.Helper()
	store, err := OpenBuntDBCatalogStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBuntDBRoundtrip(t *testing.T) {
	store := newBuntDBStore(t)
	ctx := context.Background()

	doc := []byte(`{"id":"roast-1","name":"빈브라더스"}`)
	require.NoError(t, store.Insert(ctx, domain.KindRoastery, "roast-1", doc))

	got, err := store.GetByID(ctx, domain.KindRoastery, "roast-1")
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	updated := []byte(`{"id":"roast-1","name":"빈브라더스","is_partner":true}`)
	require.NoError(t, store.Update(ctx, domain.KindRoastery, "roast-1", updated))

	got, err = store.GetByID(ctx, domain.KindRoastery, "roast-1")
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, store.Delete(ctx, domain.KindRoastery, "roast-1"))
	_, err = store.GetByID(ctx, domain.KindRoastery, "roast-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuntDBKindIsolation(t *testing.T) {
	store := newBuntDBStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, domain.KindRoastery, "x", []byte(`{"kind":"roastery"}`)))
	require.NoError(t, store.Insert(ctx, domain.KindProduct, "x", []byte(`{"kind":"product"}`)))
	require.NoError(t, store.Insert(ctx, domain.KindProduct, "y", []byte(`{"kind":"product"}`)))

	roasteries, err := store.GetAll(ctx, domain.KindRoastery)
	require.NoError(t, err)
	assert.Len(t, roasteries, 1)

	products, err := store.GetAll(ctx, domain.KindProduct)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	coffees, err := store.GetAll(ctx, domain.KindStandardCoffee)
	require.NoError(t, err)
	assert.Empty(t, coffees)
}

func TestBuntDBSentinelErrors(t *testing.T) {
	store := newBuntDBStore(t)
	ctx := context.Background()

	doc := []byte(`{}`)
	require.NoError(t, store.Insert(ctx, domain.KindProduct, "p1", doc))
	assert.ErrorIs(t, store.Insert(ctx, domain.KindProduct, "p1", doc), domain.ErrAlreadyExists)

	assert.ErrorIs(t, store.Update(ctx, domain.KindProduct, "missing", doc), domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, domain.KindProduct, "missing"), domain.ErrNotFound)

	_, err := store.GetByID(ctx, domain.KindProduct, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
