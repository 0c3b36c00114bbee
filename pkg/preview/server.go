package preview

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/facet-ui/facet/pkg/theme"
)

// ServerConfig configures the preview server.
type ServerConfig struct {
	// Host is the interface to bind (default: "localhost").
	Host string

	// Port is the TCP port (default: 8420).
	Port int

	// Pretty enables indented markup in responses.
	Pretty bool

	// Logger receives server logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Registry receives request metrics. Defaults to the global
	// Prometheus registerer.
	Registry prometheus.Registerer
}

func (c *ServerConfig) withDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8420
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Server serves the component gallery over HTTP with a websocket
// channel pushing updates when the theme changes.
type Server struct {
	cfg     ServerConfig
	gallery *Gallery
	hub     *Hub
	themes  *theme.Manager
	httpSrv *http.Server
	unsub   func()
	logger  *slog.Logger
}

// NewServer wires a gallery, websocket hub and theme manager into an
// HTTP server. The theme manager is optional; without one the live
// channel only reports markup changes.
func NewServer(cfg ServerConfig, gallery *Gallery, themes *theme.Manager) *Server {
	cfg.withDefaults()
	s := &Server{
		cfg:     cfg,
		gallery: gallery,
		hub:     NewHub(cfg.Logger),
		themes:  themes,
		logger:  cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(Tracing())
	r.Use(Metrics(MetricsConfig{Registry: cfg.Registry}))

	r.Get("/", s.handleIndex)
	r.Get("/component/{name}", s.handleComponent)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/live", s.hub.HandleWebSocket)

	s.httpSrv = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if themes != nil {
		s.unsub = themes.Subscribe(s.themeChanged)
	}
	return s
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string {
	return s.httpSrv.Addr
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		s.cleanup()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("preview server shutting down")
	err := s.httpSrv.Shutdown(shutdownCtx)
	s.cleanup()
	<-errCh
	return err
}

func (s *Server) cleanup() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
	s.hub.Close()
}

// themeChanged pushes the new scheme and re-rendered gallery to all
// connected clients.
func (s *Server) themeChanged(scheme theme.Scheme) {
	s.hub.Broadcast(Update{Type: UpdateTheme, Theme: string(scheme)})
	markup, err := s.gallery.Index()
	if err != nil {
		s.logger.Error("gallery render failed", "error", err)
		return
	}
	s.hub.Broadcast(Update{Type: UpdateMarkup, Markup: markup})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	markup, err := s.gallery.Index()
	if err != nil {
		s.logger.Error("gallery render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, markup)
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	markup, err := s.gallery.Component(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, markup)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","clients":%d}`, s.hub.ClientCount())
}
