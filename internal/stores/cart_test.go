package stores

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apolyakov/storefront/internal/logging"
	"github.com/apolyakov/storefront/internal/models"
	"github.com/apolyakov/storefront/internal/storage"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupRepo(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS slots (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return storage.NewSQLiteRepository(db)
}

func testLogger() logging.Logger {
	return logging.NewJSON(io.Discard, "error")
}

func cartSlot(repo *storage.SQLiteRepository) *storage.Slot {
	return storage.NewSlot(repo, CartSlotKey, testLogger())
}

func product(id int64, price float64) models.Product {
	return models.Product{ID: id, Title: "p", Price: price}
}

// ---- tests ----

func TestCart_AddDistinctProducts(t *testing.T) {
	cart := NewCart(context.Background(), cartSlot(setupRepo(t)))
	ctx := context.Background()

	cart.Add(ctx, product(1, 10), 2)
	cart.Add(ctx, product(2, 5), 3)
	cart.Add(ctx, product(3, 1), 1)

	require.Len(t, cart.Items(), 3)
	require.Equal(t, 6, cart.TotalItems())
}

func TestCart_AddSameProductCombinesQuantities(t *testing.T) {
	cart := NewCart(context.Background(), cartSlot(setupRepo(t)))
	ctx := context.Background()

	cart.Add(ctx, product(1, 10), 2)
	cart.Add(ctx, product(1, 10), 3)

	require.Len(t, cart.Items(), 1)
	require.Equal(t, 5, cart.Quantity(1))
}

func TestCart_AddNonPositiveQuantityCountsAsOne(t *testing.T) {
	cart := NewCart(context.Background(), cartSlot(setupRepo(t)))
	ctx := context.Background()

	cart.Add(ctx, product(1, 10), 0)
	require.Equal(t, 1, cart.Quantity(1))

	cart.Add(ctx, product(2, 10), -4)
	require.Equal(t, 1, cart.Quantity(2))
}

func TestCart_DecreaseAtOneRemovesItem(t *testing.T) {
	cart := NewCart(context.Background(), cartSlot(setupRepo(t)))
	ctx := context.Background()

	cart.Add(ctx, product(1, 10), 1)
	cart.Decrease(ctx, 1)

	require.False(t, cart.Contains(1))
	require.Empty(t, cart.Items())
}

func TestCart_SetQuantityNonPositiveRemoves(t *testing.T) {
	ctx := context.Background()

	for _, qty := range []int{0, -5} {
		cart := NewCart(ctx, cartSlot(setupRepo(t)))
		cart.Add(ctx, product(1, 10), 2)

		cart.SetQuantity(ctx, 1, qty)

		require.False(t, cart.Contains(1))
		require.Equal(t, 0, cart.Quantity(1))
	}
}

func TestCart_SetQuantityIsNotAdditive(t *testing.T) {
	cart := NewCart(context.Background(), cartSlot(setupRepo(t)))
	ctx := context.Background()

	cart.Add(ctx, product(1, 10), 2)
	cart.SetQuantity(ctx, 1, 7)

	require.Equal(t, 7, cart.Quantity(1))
}

func TestCart_MutatorsAreNoOpsOnAbsentProduct(t *testing.T) {
	cart := NewCart(context.Background(), cartSlot(setupRepo(t)))
	ctx := context.Background()

	cart.Remove(ctx, 99)
	cart.SetQuantity(ctx, 99, 5)
	cart.Increase(ctx, 99)
	cart.Decrease(ctx, 99)

	require.Empty(t, cart.Items())
	require.Equal(t, 0, cart.TotalItems())
}

func TestCart_TotalsScenario(t *testing.T) {
	repo := setupRepo(t)
	cart := NewCart(context.Background(), cartSlot(repo))
	ctx := context.Background()

	cart.Add(ctx, product(1, 10), 2)
	require.Equal(t, 2, cart.TotalItems())
	require.InDelta(t, 20, cart.TotalPrice(), 1e-9)

	cart.Increase(ctx, 1)
	require.Equal(t, 3, cart.TotalItems())
	require.InDelta(t, 30, cart.TotalPrice(), 1e-9)

	cart.Remove(ctx, 1)
	require.Empty(t, cart.Items())
	require.Zero(t, cart.TotalPrice())

	// The durable slot holds an empty list after the final removal.
	data, err := repo.Get(ctx, CartSlotKey)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))
}

func TestCart_RoundTripThroughSlot(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	cart := NewCart(ctx, cartSlot(repo))
	cart.Add(ctx, product(1, 10), 2)
	cart.Add(ctx, product(2, 3.5), 1)

	rehydrated := NewCart(ctx, cartSlot(repo))
	require.Equal(t, cart.Items(), rehydrated.Items())
	require.Equal(t, 3, rehydrated.TotalItems())
}

func TestCart_ClearErasesSlot(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	cart := NewCart(ctx, cartSlot(repo))
	cart.Add(ctx, product(1, 10), 2)
	cart.Clear(ctx)

	require.Empty(t, cart.Items())

	data, err := repo.Get(ctx, CartSlotKey)
	require.NoError(t, err)
	require.Nil(t, data)

	rehydrated := NewCart(ctx, cartSlot(repo))
	require.Empty(t, rehydrated.Items())
}

func TestCart_CorruptSlotYieldsEmptyCart(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, CartSlotKey, []byte("{oops")))

	cart := NewCart(ctx, cartSlot(repo))
	require.Empty(t, cart.Items())
}
