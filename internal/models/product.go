// Package models defines the data types exchanged with the remote store API
// and persisted by the local state containers.
package models

// Product is a catalog item as served by the remote store. Products are
// owned by the catalog and treated as immutable values once fetched.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating is the aggregate customer rating attached to a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}
