package stores

import (
	"context"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/apolyakov/storefront/internal/logging"
	"github.com/apolyakov/storefront/internal/models"
	"github.com/apolyakov/storefront/internal/storage"
)

// LoginAPI is the slice of the remote client the session needs.
type LoginAPI interface {
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)
}

// Session tracks the authentication state of the client: the session token
// (durable) plus the login progress flag, the last login error, and the
// login modal visibility (all ephemeral, reset on every start).
type Session struct {
	mu   sync.Mutex
	api  LoginAPI
	slot *storage.Slot
	log  logging.Logger

	token     string
	loading   bool
	err       string
	modalOpen bool
}

// NewSession returns a session whose token (only) is rehydrated from the
// durable slot. Loading, error, and modal state always start at their
// defaults.
func NewSession(ctx context.Context, api LoginAPI, slot *storage.Slot, log logging.Logger) *Session {
	s := &Session{api: api, slot: slot, log: log}
	slot.Load(ctx, &s.token)
	return s
}

// Login authenticates against the remote store. On success the returned
// token is stored (in memory and in the durable slot), the login modal is
// closed, and true is returned. On failure a human-readable message is
// recorded in Err and the token is left untouched. A call made while
// another login is still in flight is ignored and returns false. The
// loading flag is cleared on every exit path.
func (s *Session) Login(ctx context.Context, creds models.Credentials) bool {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return false
	}
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	resp, err := s.api.Login(ctx, creds)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = err.Error()
		s.log.Warn(ctx, "login failed", "error", err)
		return false
	}

	s.token = resp.Token
	s.slot.Save(ctx, s.token)
	s.modalOpen = false
	return true
}

// Logout clears the token (and its durable slot) and any login error. It
// is synchronous and always succeeds.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.err = ""
	s.slot.Clear(ctx)
}

// OpenLoginModal shows the login modal and clears any stale error.
func (s *Session) OpenLoginModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOpen = true
	s.err = ""
}

// CloseLoginModal hides the login modal and clears any stale error.
func (s *Session) CloseLoginModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOpen = false
	s.err = ""
}

// Authenticated reports whether a session token is present. It is always
// recomputed from the token, so the two can never diverge.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Token returns the current session token, "" when anonymous.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Loading reports whether a login is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the message of the last failed login, "" when none.
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// LoginModalOpen reports whether the login modal is visible.
func (s *Session) LoginModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modalOpen
}

// Username returns the "user" (or "sub") claim of the session token when
// the token is a parseable JWT, "" otherwise. The token is never verified
// locally; the claim is display metadata only and plays no part in
// authentication gating.
func (s *Session) Username() string {
	token := s.Token()
	if token == "" {
		return ""
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	if user, ok := claims["user"].(string); ok {
		return user
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}
