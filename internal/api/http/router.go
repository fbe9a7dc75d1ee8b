// Package http wires the service's HTTP surface: question banks,
// submissions, anonymous sessions, and the admin analytics endpoints.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/Akhand0ps/SIH-tests/internal/analytics"
	"github.com/Akhand0ps/SIH-tests/internal/auth"
	"github.com/Akhand0ps/SIH-tests/internal/catalog"
	"github.com/Akhand0ps/SIH-tests/internal/config"
	"github.com/Akhand0ps/SIH-tests/internal/scoring"
	"github.com/Akhand0ps/SIH-tests/internal/store"
)

// Deps collects everything the router mounts.
type Deps struct {
	Catalog  *catalog.Catalog
	Engine   *scoring.Engine
	Store    store.Store
	Recorder *analytics.Recorder
	Auth     *auth.AuthService
	Config   config.Config
	Log      zerolog.Logger
}

// NewRouter builds the chi router with middleware and all routes mounted.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(RequestLogger(d.Log))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization", "X-Anonymous-ID", "X-Language"},
		ExposedHeaders:   []string{"X-Total-Count", "X-User-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/", IndexHandler())
	r.Get("/api/health", HealthHandler(d.Store))
	r.Get("/api/docs", DocsHandler(d.Catalog.IDs()))
	r.Get("/api/generate-test-id", GenerateTestIDHandler())

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/questions/{testName}", GetQuestionsHandler(d.Catalog))

		v1.Get("/answers/tests", ListTestsHandler(d.Catalog))
		v1.Post("/answers/{testName}", SubmitAnswersHandler(d.Engine, d.Catalog, d.Store, d.Recorder, d.Log))
		v1.Post("/answers/{testName}/validate", ValidateAnswersHandler(d.Catalog))
		v1.Get("/answers/user/{userId}", UserHistoryHandler(d.Store, d.Log))

		v1.Post("/session", auth.SessionHandler(d.Auth))
		v1.Post("/auth/login", auth.AdminLoginHandler(d.Auth, d.Config))

		v1.Group(func(pr chi.Router) {
			pr.Use(auth.JWTMiddleware(d.Auth, auth.RoleAdmin))
			pr.Get("/admin/analytics", AdminAnalyticsHandler(d.Store, d.Log))
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	})
	return r
}
