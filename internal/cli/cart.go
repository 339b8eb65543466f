package cli

import (
	"context"
	"fmt"
	"strconv"
)

// AddToCart fetches the product so the cart stores a full snapshot of it,
// then adds the requested quantity (default 1).
func (a *App) AddToCart(ctx context.Context, args []string) error {
	id, err := parseID(args, "add <id> [qty]")
	if err != nil {
		return err
	}

	quantity := 1
	if len(args) > 1 {
		quantity, err = strconv.Atoi(args[1])
		if err != nil {
			printlnFn("usage: add <id> [qty]")
			return errUsage
		}
	}

	product, err := a.api.Product(ctx, id)
	if err != nil {
		a.log.Error(ctx, "failed to fetch product", "id", id, "error", err)
		printlnFn("error:", err.Error())
		return err
	}

	a.cart.Add(ctx, product, quantity)
	fmt.Fprintf(a.out, "added %s (x%d in cart)\n", product.Title, a.cart.Quantity(id))
	return nil
}

func (a *App) RemoveFromCart(ctx context.Context, args []string) error {
	id, err := parseID(args, "remove <id>")
	if err != nil {
		return err
	}
	a.cart.Remove(ctx, id)
	return nil
}

func (a *App) SetQuantity(ctx context.Context, args []string) error {
	id, err := parseID(args, "qty <id> <n>")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		printlnFn("usage: qty <id> <n>")
		return errUsage
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		printlnFn("usage: qty <id> <n>")
		return errUsage
	}

	a.cart.SetQuantity(ctx, id, quantity)
	return nil
}

func (a *App) ShowCart(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		printlnFn("Cart is empty")
		return nil
	}

	for _, item := range items {
		fmt.Fprintf(a.out, "#%d %s — %.2f x%d = %.2f\n",
			item.Product.ID, item.Product.Title, item.Product.Price,
			item.Quantity, item.Product.Price*float64(item.Quantity))
	}
	fmt.Fprintf(a.out, "total: %d items, %.2f\n", a.cart.TotalItems(), a.cart.TotalPrice())
	return nil
}

func (a *App) ClearCart(ctx context.Context) error {
	a.cart.Clear(ctx)
	printlnFn("Cart cleared")
	return nil
}
