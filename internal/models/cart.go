package models

// CartItem pairs a product with the quantity selected by the user.
// Quantity is always at least 1: an item whose quantity would drop to zero
// is removed from the cart instead of being kept or persisted.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the remote /carts resource. It references products by id only and
// is unrelated to the locally persisted cart state.
type Cart struct {
	ID       int64         `json:"id"`
	UserID   int64         `json:"userId"`
	Date     string        `json:"date"`
	Products []CartProduct `json:"products"`
}

// CartProduct is a single line of a remote cart.
type CartProduct struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}
