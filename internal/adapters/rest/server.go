package rest

import (
	"context"
	"fmt"
	"net/http"

	core_port "housing-insights-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Insights    *InsightsHandler
	History     *HistoryHandler
	Preferences *PreferencesHandler
	Locations   *LocationsHandler
	Health      *HealthHandler
}

// Server is the REST API server.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer builds the router and wires the handlers.
func NewServer(port string, handlers Handlers, authMiddleware *AuthMiddleware, allowedOrigins []string, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", handlers.Health.GetHealth)

	// The location catalog is public: the frontend fills its dropdowns
	// before the user logs in.
	r.Route("/api/v1/locations", func(r chi.Router) {
		r.Get("/districts", handlers.Locations.GetDistricts)
		r.Get("/districts/{district}/taluks", handlers.Locations.GetTaluks)
	})

	// Everything else is per-user and requires authentication.
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/api/v1/predictions", handlers.Insights.PredictPrice)
		r.Post("/api/v1/analytics", handlers.Insights.GetMarketAnalytics)

		r.Route("/api/v1/history", func(r chi.Router) {
			r.Get("/", handlers.History.GetHistory)
			r.Delete("/", handlers.History.ClearHistory)
			r.Delete("/{entryID}", handlers.History.RemoveEntry)
		})

		r.Route("/api/v1/preferences", func(r chi.Router) {
			r.Get("/", handlers.Preferences.GetPreferences)
			r.Put("/", handlers.Preferences.SavePreferences)
		})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start runs the HTTP server until Stop is called.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
