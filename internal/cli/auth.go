package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/apolyakov/storefront/internal/models"
)

var errLoginFailed = errors.New("login failed")

func (a *App) Login(ctx context.Context) error {
	a.session.OpenLoginModal()
	defer a.session.CloseLoginModal()

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.log.Error(ctx, "failed to read username", "error", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "failed to read password", "error", err)
		return err
	}

	if !a.session.Login(ctx, models.Credentials{Username: username, Password: password}) {
		printlnFn("Login unsuccessful:", a.session.Err())
		return errLoginFailed
	}

	printlnFn("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// Profile renders the protected profile view. Navigation goes through the
// router, so an anonymous session is redirected to the fallback route
// without the view being entered.
func (a *App) Profile(ctx context.Context) error {
	route := a.router.Resolve("profile")
	if route.Name != "profile" {
		printlnFn("Login required (redirected to " + route.Path + ")")
		return nil
	}

	fmt.Fprintln(a.out, "Profile")
	if name := a.session.Username(); name != "" {
		fmt.Fprintf(a.out, "username: %s\n", name)
	}
	fmt.Fprintf(a.out, "cart: %d items, %.2f\n", a.cart.TotalItems(), a.cart.TotalPrice())
	fmt.Fprintf(a.out, "wishlist: %d products\n", a.wishlist.Len())
	return nil
}
