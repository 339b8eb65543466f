package cli

import (
	"context"
	"fmt"
)

func (a *App) ToggleWishlist(ctx context.Context, args []string) error {
	id, err := parseID(args, "wish <id>")
	if err != nil {
		return err
	}

	// Toggling off does not need the remote product; toggling on does.
	if a.wishlist.Contains(id) {
		a.wishlist.Remove(ctx, id)
		printlnFn("Removed from wishlist")
		return nil
	}

	product, err := a.api.Product(ctx, id)
	if err != nil {
		a.log.Error(ctx, "failed to fetch product", "id", id, "error", err)
		printlnFn("error:", err.Error())
		return err
	}
	a.wishlist.Add(ctx, product)
	fmt.Fprintf(a.out, "added %s to wishlist\n", product.Title)
	return nil
}

func (a *App) ShowWishlist(ctx context.Context) error {
	items := a.wishlist.Items()
	if len(items) == 0 {
		printlnFn("Wishlist is empty")
		return nil
	}
	a.printProducts(items)
	return nil
}

func (a *App) ClearWishlist(ctx context.Context) error {
	a.wishlist.Clear(ctx)
	printlnFn("Wishlist cleared")
	return nil
}
