// Package stores contains the client-side state containers: the cart, the
// wishlist, and the auth session. Each container exclusively owns its
// in-memory state and writes it through a durable storage slot immediately
// after every mutation, so the next application start can rehydrate it.
// Containers are explicit instances, constructed once and passed to whoever
// needs them.
package stores

import (
	"context"
	"sync"

	"github.com/apolyakov/storefront/internal/models"
	"github.com/apolyakov/storefront/internal/storage"
)

// Durable slot keys, one JSON value per container.
const (
	CartSlotKey     = "cart_items"
	WishlistSlotKey = "wishlist_items"
	TokenSlotKey    = "auth_token"
)

// Cart holds the items selected for purchase, in insertion order. At most
// one item exists per product id and quantities are always positive.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
	slot  *storage.Slot
}

// NewCart returns a cart rehydrated from its durable slot. An absent or
// corrupt slot yields an empty cart.
func NewCart(ctx context.Context, slot *storage.Slot) *Cart {
	c := &Cart{slot: slot}
	slot.Load(ctx, &c.items)
	return c
}

// Add puts quantity units of product into the cart, merging with an
// existing item for the same product id. A non-positive quantity counts
// as 1. There is no upper bound: the cart is client-only and does not
// check catalog stock.
func (c *Cart) Add(ctx context.Context, product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += quantity
			c.persist(ctx)
			return
		}
	}
	c.items = append(c.items, models.CartItem{Product: product, Quantity: quantity})
	c.persist(ctx)
}

// Remove deletes the item with the given product id. No-op when absent.
func (c *Cart) Remove(ctx context.Context, productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(ctx, productID)
}

// SetQuantity sets the item's quantity to exactly quantity. A value of zero
// or less removes the item. No-op when the product is not in the cart.
func (c *Cart) SetQuantity(ctx context.Context, productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(ctx, productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			c.persist(ctx)
			return
		}
	}
}

// Increase bumps an existing item's quantity by one. No-op when absent.
func (c *Cart) Increase(ctx context.Context, productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity++
			c.persist(ctx)
			return
		}
	}
}

// Decrease lowers an existing item's quantity by one; decreasing from 1
// removes the item. No-op when absent.
func (c *Cart) Decrease(ctx context.Context, productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			if c.items[i].Quantity > 1 {
				c.items[i].Quantity--
				c.persist(ctx)
			} else {
				c.removeLocked(ctx, productID)
			}
			return
		}
	}
}

// Clear empties the cart and erases its durable slot.
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.slot.Clear(ctx)
}

// Quantity returns the quantity for the given product id, 0 when absent.
func (c *Cart) Quantity(productID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return c.items[i].Quantity
		}
	}
	return 0
}

// Contains reports whether the product is in the cart.
func (c *Cart) Contains(productID int64) bool {
	return c.Quantity(productID) > 0
}

// Items returns a copy of the cart content in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalItems is the sum of all quantities. Recomputed on every call.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity. Recomputed on every
// call.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) removeLocked(ctx context.Context, productID int64) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist(ctx)
			return
		}
	}
}

// persist writes the full item list to the slot. Callers must hold mu so
// slot writes happen in mutation order.
func (c *Cart) persist(ctx context.Context) {
	c.slot.Save(ctx, c.items)
}
