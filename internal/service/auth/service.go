// Package auth implements login and identity operations for the two fixed
// inventory principals.
package auth

import (
	"log/slog"
	"time"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// authenticator verifies a username/secret pair against the principal store.
type authenticator interface {
	Authenticate(username, secret string) (domain.Principal, error)
}

// tokenIssuer mints access tokens for authenticated principals.
type tokenIssuer interface {
	GenerateAccessToken(p domain.Principal) (string, error)
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	auth      authenticator
	tokens    tokenIssuer
	accessTTL time.Duration
}

// NewService creates a new auth service.
func NewService(log *slog.Logger, auth authenticator, tokens tokenIssuer, accessTTL time.Duration) *Service {
	return &Service{
		log:       log.With("service", "auth"),
		auth:      auth,
		tokens:    tokens,
		accessTTL: accessTTL,
	}
}
