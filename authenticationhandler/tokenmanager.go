// authenticationhandler/tokenmanager.go
package authenticationhandler

import (
	"context"
	"sync"
	"time"

	"github.com/deploymenttheory/go-api-http-client-commercetools/logger"
	"go.uber.org/zap"
)

// AuthTokenHandler holds at most one token and refreshes it through its
// provider once the token is within the refresh buffer of its expiry.
type AuthTokenHandler struct {
	provider      TokenProvider
	refreshBuffer time.Duration
	log           logger.Logger

	mu    sync.Mutex // serialises check, refresh and store
	token *Token
}

// NewAuthTokenHandler creates a handler with an empty slot. A non-positive
// refreshBuffer falls back to DefaultExpiryMargin.
func NewAuthTokenHandler(provider TokenProvider, refreshBuffer time.Duration, log logger.Logger) *AuthTokenHandler {
	if refreshBuffer <= 0 {
		refreshBuffer = DefaultExpiryMargin
	}
	return &AuthTokenHandler{
		provider:      provider,
		refreshBuffer: refreshBuffer,
		log:           log,
	}
}

// GetToken returns a valid access token, fetching a new one when the slot is
// empty or the cached token is no longer valid. The lock is held across the
// fetch, so concurrent callers wait for one refresh instead of starting their
// own. On failure the slot is left untouched.
func (h *AuthTokenHandler) GetToken(ctx context.Context) (string, error) {
	token, err := h.ValidToken(ctx)
	if err != nil {
		return "", err
	}
	return token.AccessToken(), nil
}

// ValidToken is GetToken returning the whole Token, expiry included.
func (h *AuthTokenHandler) ValidToken(ctx context.Context) (Token, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token != nil && h.token.IsValidWithMargin(time.Now().UTC(), h.refreshBuffer) {
		h.log.Debug("Using cached token", zap.Time("ExpiresAt", h.token.ExpiresAt()))
		return *h.token, nil
	}

	h.log.Debug("Token missing or close to expiry, refreshing", zap.Duration("RefreshBuffer", h.refreshBuffer))

	token, err := h.provider.RetrieveToken(ctx)
	if err != nil {
		h.log.Warn("Token refresh failed, cached token left unchanged", zap.Error(err))
		return Token{}, err
	}

	h.token = &token
	return token, nil
}

// InvalidateToken empties the slot so the next GetToken fetches a new token.
func (h *AuthTokenHandler) InvalidateToken() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = nil
	h.log.Debug("Cached token invalidated")
}

// CachedToken returns the token currently in the slot, valid or not.
func (h *AuthTokenHandler) CachedToken() (Token, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token == nil {
		return Token{}, false
	}
	return *h.token, true
}

// RefreshBuffer returns the margin applied before expiry.
func (h *AuthTokenHandler) RefreshBuffer() time.Duration {
	return h.refreshBuffer
}
