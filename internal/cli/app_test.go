package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/apolyakov/storefront/internal/config"
	"github.com/apolyakov/storefront/internal/models"
)

func fakeStore(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Product{ID: 1, Title: "Backpack", Price: 10})
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "m38rmF$" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode("username or password is incorrect")
			return
		}
		_ = json.NewEncoder(w).Encode(models.LoginResponse{Token: "tok"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	silencePrintln(t)

	tmp := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(old) })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BaseURL = fakeStore(t).URL
	cfg.DatabaseFile = "test.db"
	cfg.RequestTimeout = 5 * time.Second
	cfg.LogLevel = "error"

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	app.out = &bytes.Buffer{}
	return app
}

func TestApp_CartCommands(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.AddToCart(ctx, []string{"1", "2"}))
	require.Equal(t, 2, app.cart.TotalItems())

	require.NoError(t, app.SetQuantity(ctx, []string{"1", "5"}))
	require.Equal(t, 5, app.cart.Quantity(1))

	require.NoError(t, app.RemoveFromCart(ctx, []string{"1"}))
	require.False(t, app.cart.Contains(1))
}

func TestApp_WishlistToggle(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.ToggleWishlist(ctx, []string{"1"}))
	require.True(t, app.wishlist.Contains(1))

	require.NoError(t, app.ToggleWishlist(ctx, []string{"1"}))
	require.False(t, app.wishlist.Contains(1))
}

func TestApp_LoginFlowAndProfileGate(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	out := app.out.(*bytes.Buffer)

	// Anonymous: the profile view must not render.
	require.NoError(t, app.Profile(ctx))
	require.NotContains(t, out.String(), "Profile")

	app.reader = bufio.NewReader(strings.NewReader("johnd\n"))
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("wrong"), nil }
	t.Cleanup(func() { readPassword = old })

	require.Error(t, app.Login(ctx))
	require.False(t, app.session.Authenticated())

	app.reader = bufio.NewReader(strings.NewReader("johnd\n"))
	readPassword = func(int) ([]byte, error) { return []byte("m38rmF$"), nil }

	require.NoError(t, app.Login(ctx))
	require.True(t, app.session.Authenticated())

	out.Reset()
	require.NoError(t, app.Profile(ctx))
	require.Contains(t, out.String(), "Profile")
}
