package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fedplan/tsp-simulator/internal/api/handlers"
	custommiddleware "github.com/fedplan/tsp-simulator/internal/api/middleware"
	"github.com/fedplan/tsp-simulator/internal/calculation"
	"github.com/fedplan/tsp-simulator/internal/config"
	"github.com/fedplan/tsp-simulator/internal/store"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(db *sql.DB, engine *calculation.Engine, scenarios *store.ScenarioRepository, cfg *config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	corsMiddleware := custommiddleware.NewCORS(cfg.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(db)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/projection", func(r chi.Router) {
			projectionHandler := handlers.NewProjectionHandler(engine, scenarios)
			r.Post("/", projectionHandler.Project)
			r.Post("/compare", projectionHandler.Compare)
			r.Get("/{scenarioID}", projectionHandler.ProjectStored)
		})

		r.Route("/scenarios", func(r chi.Router) {
			scenarioHandler := handlers.NewScenarioHandler(scenarios)
			r.Post("/", scenarioHandler.Create)
			r.Get("/", scenarioHandler.List)
			r.Delete("/{scenarioID}", scenarioHandler.Delete)
		})

		limitsHandler := handlers.NewLimitsHandler(engine.Match)
		r.Get("/limits", limitsHandler.Limits)

		fundHandler := handlers.NewFundHandler(engine.Returns)
		r.Get("/funds/{fund}/return", fundHandler.Return)
	})

	return r
}
