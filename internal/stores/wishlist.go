package stores

import (
	"context"
	"sync"

	"github.com/apolyakov/storefront/internal/models"
	"github.com/apolyakov/storefront/internal/storage"
)

// Wishlist is a set of products the user saved for later, unique by product
// id, kept in insertion order for display.
type Wishlist struct {
	mu    sync.Mutex
	items []models.Product
	slot  *storage.Slot
}

// NewWishlist returns a wishlist rehydrated from its durable slot. An
// absent or corrupt slot yields an empty wishlist.
func NewWishlist(ctx context.Context, slot *storage.Slot) *Wishlist {
	w := &Wishlist{slot: slot}
	slot.Load(ctx, &w.items)
	return w
}

// Add saves the product. No-op when it is already on the wishlist.
func (w *Wishlist) Add(ctx context.Context, product models.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.containsLocked(product.ID) {
		return
	}
	w.items = append(w.items, product)
	w.persist(ctx)
}

// Remove drops the product with the given id. No-op when absent.
func (w *Wishlist) Remove(ctx context.Context, productID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.removeLocked(ctx, productID)
}

// Toggle adds the product when absent and removes it when present.
func (w *Wishlist) Toggle(ctx context.Context, product models.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.containsLocked(product.ID) {
		w.removeLocked(ctx, product.ID)
		return
	}
	w.items = append(w.items, product)
	w.persist(ctx)
}

// Clear empties the wishlist and erases its durable slot.
func (w *Wishlist) Clear(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.items = nil
	w.slot.Clear(ctx)
}

// Contains reports whether the product is on the wishlist.
func (w *Wishlist) Contains(productID int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.containsLocked(productID)
}

// Items returns a copy of the wishlist in insertion order.
func (w *Wishlist) Items() []models.Product {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]models.Product, len(w.items))
	copy(items, w.items)
	return items
}

// Len returns the number of saved products.
func (w *Wishlist) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

func (w *Wishlist) containsLocked(productID int64) bool {
	for i := range w.items {
		if w.items[i].ID == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) removeLocked(ctx context.Context, productID int64) {
	for i := range w.items {
		if w.items[i].ID == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			w.persist(ctx)
			return
		}
	}
}

func (w *Wishlist) persist(ctx context.Context) {
	w.slot.Save(ctx, w.items)
}
