package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/apolyakov/storefront/internal/api"
	"github.com/apolyakov/storefront/internal/models"
)

var errUsage = errors.New("usage")

func (a *App) Products(ctx context.Context, args []string) error {
	opts := api.ListOptions{}
	if len(args) > 0 {
		limit, err := strconv.Atoi(args[0])
		if err != nil {
			printlnFn("usage: products [n]")
			return errUsage
		}
		opts.Limit = limit
	}

	products, err := a.api.Products(ctx, opts)
	if err != nil {
		a.log.Error(ctx, "failed to list products", "error", err)
		printlnFn("error:", err.Error())
		return err
	}
	a.printProducts(products)
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("usage: search <text>")
		return errUsage
	}

	products, err := a.api.SearchProducts(ctx, strings.Join(args, " "))
	if err != nil {
		a.log.Error(ctx, "search failed", "error", err)
		printlnFn("error:", err.Error())
		return err
	}
	if len(products) == 0 {
		printlnFn("No products found")
		return nil
	}
	a.printProducts(products)
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseID(args, "show <id>")
	if err != nil {
		return err
	}

	product, err := a.api.Product(ctx, id)
	if err != nil {
		a.log.Error(ctx, "failed to fetch product", "id", id, "error", err)
		printlnFn("error:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "#%d %s — %.2f\n", product.ID, product.Title, product.Price)
	fmt.Fprintf(a.out, "category: %s\n", product.Category)
	fmt.Fprintln(a.out, product.Description)
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	categories, err := a.api.Categories(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to list categories", "error", err)
		printlnFn("error:", err.Error())
		return err
	}
	for _, c := range categories {
		printlnFn(c)
	}
	return nil
}

func (a *App) Category(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("usage: category <name>")
		return errUsage
	}

	products, err := a.api.ProductsByCategory(ctx, strings.Join(args, " "), api.ListOptions{})
	if err != nil {
		a.log.Error(ctx, "failed to list category", "error", err)
		printlnFn("error:", err.Error())
		return err
	}
	a.printProducts(products)
	return nil
}

func (a *App) printProducts(products []models.Product) {
	for _, p := range products {
		marks := ""
		if a.cart.Contains(p.ID) {
			marks += " [cart]"
		}
		if a.wishlist.Contains(p.ID) {
			marks += " [wish]"
		}
		fmt.Fprintf(a.out, "#%d %s — %.2f%s\n", p.ID, p.Title, p.Price, marks)
	}
}

func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		printlnFn("usage: " + usage)
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("usage: " + usage)
		return 0, errUsage
	}
	return id, nil
}
