package web

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"task-manager/internal/config"
	"task-manager/internal/web/handlers"
	"task-manager/internal/web/middleware"
)

// Server represents the HTTP API server
type Server struct {
	cfg      config.ServerConfig
	addr     string
	router   *chi.Mux
	handlers *handlers.Handlers
}

// NewServer creates a new API server
func NewServer(cfg config.Config, h *handlers.Handlers) *Server {
	s := &Server{
		cfg:      cfg.Server,
		addr:     cfg.Addr(),
		router:   chi.NewRouter(),
		handlers: h,
	}
	s.setupRoutes()
	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	r := s.router

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/test_db_connection", s.handlers.TestDBConnection)

	r.Route(s.cfg.APIPrefix, func(r chi.Router) {
		r.Use(middleware.CORS(s.cfg.AllowedOrigin))
		s.handlers.Routes(r)
	})
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
