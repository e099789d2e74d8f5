package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/languidpie/smit-homework-v2/internal/domain"
	"github.com/languidpie/smit-homework-v2/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.Principal, error)
}

type basicAuthenticator interface {
	Authenticate(username, secret string) (domain.Principal, error)
}

// Authenticate resolves the Authorization header into a context principal.
// Both `Bearer <jwt>` and `Basic <base64>` are accepted. A missing header
// passes through anonymously so public routes keep working; a present but
// invalid credential is rejected here with 401.
func Authenticate(tokens tokenValidator, basic basicAuthenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := resolvePrincipal(header, tokens, basic)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := ctxutil.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolvePrincipal(header string, tokens tokenValidator, basic basicAuthenticator) (domain.Principal, error) {
	scheme, credential, found := strings.Cut(header, " ")
	if !found {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	switch {
	case strings.EqualFold(scheme, "Bearer"):
		return tokens.ValidateAccessToken(strings.TrimSpace(credential))
	case strings.EqualFold(scheme, "Basic"):
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(credential))
		if err != nil {
			return domain.Principal{}, domain.ErrUnauthorized
		}
		username, secret, ok := strings.Cut(string(decoded), ":")
		if !ok {
			return domain.Principal{}, domain.ErrUnauthorized
		}
		return basic.Authenticate(username, secret)
	default:
		return domain.Principal{}, domain.ErrUnauthorized
	}
}
