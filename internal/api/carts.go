package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/apolyakov/storefront/internal/models"
)

const cartsPath = "/carts"

func (c *Client) Carts(ctx context.Context, opts ListOptions) ([]models.Cart, error) {
	var carts []models.Cart
	if err := c.do(ctx, http.MethodGet, cartsPath, nil, opts.values(), &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

func (c *Client) Cart(ctx context.Context, id int64) (models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", cartsPath, id), nil, nil, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (c *Client) UserCarts(ctx context.Context, userID int64) ([]models.Cart, error) {
	var carts []models.Cart
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/user/%d", cartsPath, userID), nil, nil, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

func (c *Client) CreateCart(ctx context.Context, cart models.Cart) (models.Cart, error) {
	var created models.Cart
	if err := c.do(ctx, http.MethodPost, cartsPath, cart, nil, &created); err != nil {
		return models.Cart{}, err
	}
	return created, nil
}

func (c *Client) UpdateCart(ctx context.Context, id int64, cart models.Cart) (models.Cart, error) {
	var updated models.Cart
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", cartsPath, id), cart, nil, &updated); err != nil {
		return models.Cart{}, err
	}
	return updated, nil
}

func (c *Client) DeleteCart(ctx context.Context, id int64) (models.Cart, error) {
	var deleted models.Cart
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", cartsPath, id), nil, nil, &deleted); err != nil {
		return models.Cart{}, err
	}
	return deleted, nil
}
