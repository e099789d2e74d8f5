package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// LoginInput is a credential pair from the login endpoint.
type LoginInput struct {
	Username string
	Password string
}

// Validate rejects blank credentials before any store lookup.
func (in LoginInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "Username is required"})
	}
	if in.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	Principal   domain.Principal
}

// Login verifies the credential pair and issues a bearer token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	principal, err := s.auth.Authenticate(in.Username, in.Password)
	if err != nil {
		s.log.WarnContext(ctx, "login rejected",
			slog.String("username", in.Username))
		return nil, err
	}

	token, err := s.tokens.GenerateAccessToken(principal)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "principal logged in",
		slog.String("username", principal.Username),
		slog.String("role", principal.Role.String()))

	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
		Principal:   principal,
	}, nil
}
