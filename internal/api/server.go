// Package api provides the HTTP API server and handlers for the TripAtlas application.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tripatlas/tripatlas-server/internal/service"
	"github.com/tripatlas/tripatlas-server/internal/store"
)

// Services bundles the entity services the handlers depend on.
type Services struct {
	User        *service.UserService
	Country     *service.CountryService
	Location    *service.LocationService
	Trip        *service.TripService
	UserCountry *service.UserCountryService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store        store.Store
	services     *Services
	router       *chi.Mux
	api          huma.API
	logger       *slog.Logger
	queryTimeout time.Duration
}

// NewServer creates a new HTTP server with all routes configured.
// queryTimeout bounds each request's store access via context deadline;
// zero disables the bound.
func NewServer(store store.Store, services *Services, logger *slog.Logger, queryTimeout time.Duration) *Server {
	s := &Server{
		store:        store,
		services:     services,
		router:       chi.NewRouter(),
		logger:       logger,
		queryTimeout: queryTimeout,
	}

	s.setupMiddleware()

	RegisterErrorHandler()
	s.api = humachi.New(s.router, huma.DefaultConfig("TripAtlas API", "1.0.0"))

	s.registerHealthRoutes()
	s.registerUserRoutes()
	s.registerCountryRoutes()
	s.registerLocationRoutes()
	s.registerTripRoutes()
	s.registerUserCountryRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	if s.queryTimeout > 0 {
		s.router.Use(middleware.Timeout(s.queryTimeout))
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}
