// Package web hosts runtime processes over HTTP: it serves the bootstrap
// page and the thin client, upgrades /ws connections, and runs one process
// per connected session against a remote document.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clientdist "github.com/lumenui/lumen/client/dist"
	"github.com/lumenui/lumen/internal/config"
	"github.com/lumenui/lumen/internal/errors"
	"github.com/lumenui/lumen/pkg/remote"
	"github.com/lumenui/lumen/pkg/runtime"
	"github.com/lumenui/lumen/pkg/surface"
)

// AppFactory builds a fresh runtime process for one session's document.
type AppFactory func(doc surface.Document) (runtime.Runner, error)

// Server hosts an application.
type Server struct {
	cfg     *config.Config
	factory AppFactory
	logger  *slog.Logger

	sessions *SessionManager
	upgrader websocket.Upgrader

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithCheckOrigin overrides the WebSocket origin check. The default accepts
// same-host origins only.
func WithCheckOrigin(fn func(*http.Request) bool) Option {
	return func(s *Server) { s.upgrader.CheckOrigin = fn }
}

// New creates a server for the given configuration and app factory.
func New(cfg *config.Config, factory AppFactory, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if factory == nil {
		return nil, errors.Newf(errors.CategoryServer, "web: nil app factory")
	}

	s := &Server{
		cfg:     cfg,
		factory: factory,
		logger:  slog.Default(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	sessions, err := NewSessionManager(cfg.Session.MaxSessions, s.logger)
	if err != nil {
		return nil, err
	}
	s.sessions = sessions
	return s, nil
}

// Sessions exposes the session manager.
func (s *Server) Sessions() *SessionManager { return s.sessions }

// Handler builds the HTTP routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/_lumen/client.js", s.handleClientJS)
	r.Get("/healthz", s.handleHealth)
	if s.cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}
	r.Get("/ws", s.handleWS)

	return r
}

const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
<div id="%s"></div>
<script src="/_lumen/client.js"></script>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	title := s.cfg.Name
	if title == "" {
		title = "Lumen"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexPage, title, remote.RootID)
}

func (s *Server) handleClientJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Write(clientdist.LumenJS)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleWS upgrades the connection and runs one process for its lifetime.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", errors.FromError(err, "E201"))
		return
	}

	doc := remote.NewDocument(conn, remote.WithLogger(s.logger))
	sess := s.sessions.Add(doc)
	logger := s.logger.With("session", sess.ID)
	logger.Info("session started", "remote", r.RemoteAddr)

	app, err := s.factory(doc)
	if err != nil {
		logger.Error("app factory failed", "error", err)
		s.sessions.Remove(sess.ID)
		return
	}

	go doc.ReadLoop()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-doc.Done()
		cancel()
	}()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("app stopped", "error", err)
	}
	cancel()
	s.sessions.Remove(sess.ID)
	logger.Info("session ended", "age", time.Since(sess.StartedAt))
}

// Start listens and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- errors.New("E203").Wrap(err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections and drains with a timeout.
func (s *Server) Shutdown() error {
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
