package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fortuna/boreas/internal/store"
	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, db *store.Database) *Server {
	handler := NewHandler(db)

	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Games
	api.HandleFunc("/games", handler.GetGamesByDate).Methods("GET")
	api.HandleFunc("/games/{gameID}", handler.GetGame).Methods("GET")
	api.HandleFunc("/games/{gameID}/events", handler.GetGameEvents).Methods("GET")

	// Players
	api.HandleFunc("/players/search", handler.SearchPlayers).Methods("GET")
	api.HandleFunc("/players/{playerID}", handler.GetPlayer).Methods("GET")

	// Teams
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/teams/{teamID}", handler.GetTeam).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
