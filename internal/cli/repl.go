package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Products(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	Category(ctx context.Context, args []string) error
	AddToCart(ctx context.Context, args []string) error
	RemoveFromCart(ctx context.Context, args []string) error
	SetQuantity(ctx context.Context, args []string) error
	ShowCart(ctx context.Context) error
	ClearCart(ctx context.Context) error
	ToggleWishlist(ctx context.Context, args []string) error
	ShowWishlist(ctx context.Context) error
	ClearWishlist(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. Unknown commands are reported back to the user. The loop exits
// on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("store> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Catalog:  products [n], search <text>, show <id>, categories, category <name>")
			printlnFn("Cart:     add <id> [qty], remove <id>, qty <id> <n>, cart, clearcart")
			printlnFn("Wishlist: wish <id>, wishlist, clearwishlist")
			if a.isLoggedIn() {
				printlnFn("Account:  profile, logout, exit")
			} else {
				printlnFn("Account:  login, profile, exit")
			}

		case "products":
			_ = a.Products(ctx, args)

		case "search":
			_ = a.Search(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "categories":
			_ = a.Categories(ctx)

		case "category":
			_ = a.Category(ctx, args)

		case "add":
			_ = a.AddToCart(ctx, args)

		case "remove":
			_ = a.RemoveFromCart(ctx, args)

		case "qty":
			_ = a.SetQuantity(ctx, args)

		case "cart":
			_ = a.ShowCart(ctx)

		case "clearcart":
			_ = a.ClearCart(ctx)

		case "wish":
			_ = a.ToggleWishlist(ctx, args)

		case "wishlist":
			_ = a.ShowWishlist(ctx)

		case "clearwishlist":
			_ = a.ClearWishlist(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
