package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"ipe/internal/delivery/http/controllers"
	"ipe/internal/delivery/http/middleware"
	"ipe/internal/domain"
)

// RouterDeps groups everything NewRouter wires together.
type RouterDeps struct {
	Logger         *slog.Logger
	TokenVerifier  domain.TokenVerifier
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string

	Users     *controllers.UserController
	Entries   *controllers.EntryController
	Reactions *controllers.ReactionController
	About     *controllers.AboutController
	Health    *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes and the
// middleware chain: CORS, request id, access log and per-route metrics.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(deps.TokenVerifier, deps.Logger)
	optionalAuth := middleware.OptionalAuth(deps.TokenVerifier, deps.Logger)
	limit := func(h http.HandlerFunc) http.HandlerFunc { return h }
	if deps.RateLimiter != nil {
		limit = deps.RateLimiter.Limit
	}

	// Auth
	mux.HandleFunc("POST /auth/register", limit(deps.Users.Register))
	mux.HandleFunc("POST /auth/login", limit(deps.Users.Login))
	mux.HandleFunc("GET /users/me", auth(deps.Users.GetMe))

	// Entries
	mux.HandleFunc("GET /entries", optionalAuth(deps.Entries.List))
	mux.HandleFunc("POST /entries", limit(auth(deps.Entries.Submit)))
	mux.HandleFunc("GET /entries/mine", auth(deps.Entries.ListMine))
	mux.HandleFunc("GET /entries/{entryID}", optionalAuth(deps.Entries.Get))
	mux.HandleFunc("PUT /entries/{entryID}", auth(deps.Entries.Update))
	mux.HandleFunc("DELETE /entries/{entryID}", auth(deps.Entries.Delete))
	mux.HandleFunc("POST /entries/{entryID}/like", auth(deps.Reactions.ToggleLike))
	mux.HandleFunc("POST /entries/{entryID}/save", auth(deps.Reactions.ToggleSave))
	mux.HandleFunc("GET /researchers/{name}/entries", deps.Entries.ListByResearcher)

	// Meta
	mux.HandleFunc("GET /about", deps.About.About)
	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = middleware.Metrics(mux)
	handler = middleware.LoggingMiddleware(deps.Logger, handler)
	handler = middleware.RequestID(handler)
	return middleware.CORS(deps.AllowedOrigins, handler)
}
