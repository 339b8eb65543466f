package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/apolyakov/storefront/internal/models"
)

const productsPath = "/products"

// productsCacheKey names the cached full product list used by SearchProducts.
const productsCacheKey = "products:all"

func (c *Client) Products(ctx context.Context, opts ListOptions) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, productsPath, nil, opts.values(), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", productsPath, id), nil, nil, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, productsPath+"/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string, opts ListOptions) ([]models.Product, error) {
	var products []models.Product
	path := productsPath + "/category/" + url.PathEscape(category)
	if err := c.do(ctx, http.MethodGet, path, nil, opts.values(), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, productsPath, product, nil, &created); err != nil {
		return models.Product{}, err
	}
	c.cache.Delete(productsCacheKey)
	return created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, product models.Product) (models.Product, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", productsPath, id), product, nil, &updated); err != nil {
		return models.Product{}, err
	}
	c.cache.Delete(productsCacheKey)
	return updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) (models.Product, error) {
	var deleted models.Product
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", productsPath, id), nil, nil, &deleted); err != nil {
		return models.Product{}, err
	}
	c.cache.Delete(productsCacheKey)
	return deleted, nil
}

// SearchProducts matches query against product titles and descriptions,
// case-insensitively. The remote API has no search endpoint, so the full
// list is fetched (and cached) and filtered client-side. An empty query
// returns the full list.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	products, err := c.allProducts(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products, nil
	}

	var matched []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (c *Client) allProducts(ctx context.Context) ([]models.Product, error) {
	if v, ok := c.cache.Get(productsCacheKey); ok {
		return v.([]models.Product), nil
	}
	products, err := c.Products(ctx, ListOptions{})
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(productsCacheKey, products)
	return products, nil
}
