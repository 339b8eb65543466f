// Package cli implements the interactive storefront shell: a REPL over the
// catalog, the cart and wishlist containers, and the auth session.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/apolyakov/storefront/internal/api"
	"github.com/apolyakov/storefront/internal/config"
	"github.com/apolyakov/storefront/internal/filex"
	"github.com/apolyakov/storefront/internal/logging"
	"github.com/apolyakov/storefront/internal/nav"
	"github.com/apolyakov/storefront/internal/storage"
	"github.com/apolyakov/storefront/internal/stores"

	_ "modernc.org/sqlite"
)

// clientIDSlotKey holds the durable client instance id used for log
// correlation across runs.
const clientIDSlotKey = "client_id"

// App wires the containers, the remote client, and the REPL together. One
// App is constructed per process; the containers it owns are the only
// holders of client state.
type App struct {
	config   *config.Config
	api      *api.Client
	cart     *stores.Cart
	wishlist *stores.Wishlist
	session  *stores.Session
	router   *nav.Router
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewJSON(os.Stderr, cfg.LogLevel)

	dir, err := filex.EnsureSubDir("data")
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, filepath.Join(dir, cfg.DatabaseFile))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}
	repo := storage.NewSQLiteRepository(db)

	var logger logging.Logger = log.With("client_id", clientID(ctx, repo, log))

	apiClient := api.New(cfg.BaseURL, cfg.RequestTimeout, cfg.CacheTTL)

	cart := stores.NewCart(ctx, storage.NewSlot(repo, stores.CartSlotKey, logger))
	wishlist := stores.NewWishlist(ctx, storage.NewSlot(repo, stores.WishlistSlotKey, logger))
	session := stores.NewSession(ctx, apiClient, storage.NewSlot(repo, stores.TokenSlotKey, logger), logger)

	router, err := nav.New([]nav.Route{
		{Name: "home", Path: "/"},
		{Name: "products", Path: "/products"},
		{Name: "cart", Path: "/cart"},
		{Name: "wishlist", Path: "/wishlist"},
		{Name: "profile", Path: "/profile", RequiresAuth: true},
	}, "home", session.Authenticated)
	if err != nil {
		return nil, err
	}

	return &App{
		config:   cfg,
		api:      apiClient,
		cart:     cart,
		wishlist: wishlist,
		session:  session,
		router:   router,
		log:      logger,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// clientID returns the durable client instance id, generating one on first
// run. A slot that fails to load simply yields a fresh id.
func clientID(ctx context.Context, repo storage.Repository, log logging.Logger) string {
	slot := storage.NewSlot(repo, clientIDSlotKey, log)

	var id string
	if slot.Load(ctx, &id) && id != "" {
		return id
	}
	id = uuid.NewString()
	slot.Save(ctx, id)
	return id
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Storefront CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) getStatus() string {
	s := ""
	if name := a.session.Username(); name != "" {
		s = name
	} else if a.session.Authenticated() {
		s = "logged in"
	}
	if n := a.cart.TotalItems(); n > 0 {
		if s != "" {
			s += " "
		}
		s += "cart:" + strconv.Itoa(n)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}
