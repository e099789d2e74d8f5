package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/languidpie/smit-homework-v2/internal/config"
	"github.com/languidpie/smit-homework-v2/internal/domain"
	"github.com/languidpie/smit-homework-v2/internal/transport/middleware"
)

// RouterDeps carries everything the HTTP surface needs.
type RouterDeps struct {
	Logger  *slog.Logger
	CORS    config.CORSConfig
	Health  *HealthHandler
	Auth    *AuthHandler
	Parts   *PartsHandler
	Records *RecordsHandler

	TokenValidator interface {
		ValidateAccessToken(token string) (domain.Principal, error)
	}
	BasicAuthenticator interface {
		Authenticate(username, secret string) (domain.Principal, error)
	}
}

// NewRouter wires the middleware stack and every route. Health endpoints are
// public; the two collections sit behind their respective roles.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.Authenticate(deps.TokenValidator, deps.BasicAuthenticator))

	r.Get("/health", deps.Health.Health)
	r.Get("/health/live", deps.Health.Live)
	r.Get("/health/ready", deps.Health.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.Auth.Login)
			r.Get("/me", deps.Auth.Me)
		})

		r.Route("/parts", func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.RoleParts))

			r.Get("/", deps.Parts.List)
			r.Post("/", deps.Parts.Create)
			r.Get("/search", deps.Parts.Search)
			r.Get("/type/{type}", deps.Parts.FilterByType)
			r.Get("/{id}", deps.Parts.Get)
			r.Put("/{id}", deps.Parts.Update)
			r.Delete("/{id}", deps.Parts.Delete)
		})

		r.Route("/records", func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.RoleRecords))

			r.Get("/", deps.Records.List)
			r.Post("/", deps.Records.Create)
			r.Get("/search", deps.Records.Search)
			r.Get("/genre/{genre}", deps.Records.FilterByGenre)
			r.Get("/{id}", deps.Records.Get)
			r.Put("/{id}", deps.Records.Update)
			r.Delete("/{id}", deps.Records.Delete)
		})
	})

	return r
}
