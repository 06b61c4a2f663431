package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/typetalk-sentiment/api/internal/models"
)

// TokenHeader carries the caller's Typetalk access token
const TokenHeader = "X-Typetalk-Token"

// Service is the use case layer behind the HTTP handlers
type Service interface {
	GetSpaces(ctx context.Context, token string) (*models.SpacesResponse, error)
	GetTopics(ctx context.Context, token, spaceKey string) (*models.TopicsResponse, error)
	GetMessages(ctx context.Context, token string, topicID int64, fromID *int64) (*models.MessagesResponse, error)
}

// Server handles HTTP requests
type Server struct {
	service Service
	router  *mux.Router
	server  *http.Server
}

// NewServer creates a new HTTP server listening on port
func NewServer(port string, service Service) *Server {
	s := &Server{
		service: service,
		router:  mux.NewRouter(),
	}
	s.routes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) routes() {
	s.router.Use(requestContext, recoverPanic)

	s.router.HandleFunc("/healthcheck", s.handleHealthCheck).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	s.router.HandleFunc("/spaces", s.handleGetSpaces).Methods(http.MethodGet)
	s.router.HandleFunc("/topics", s.handleGetTopics).Methods(http.MethodGet)
	s.router.HandleFunc("/topics/{topic_id}/messages", s.handleGetMessages).Methods(http.MethodGet)

	// Router middleware only runs for matched routes
	s.router.NotFoundHandler = requestContext(httpErrorHandler(http.StatusNotFound))
	s.router.MethodNotAllowedHandler = requestContext(httpErrorHandler(http.StatusMethodNotAllowed))
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
