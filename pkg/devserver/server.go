// Package devserver serves the browser swap form and forwards its /swap
// calls to the configured backend, so the form can be used against a
// backend running on another origin. It performs no swap logic itself.
package devserver

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"sol-swap/pkg/client"
)

//go:embed static/index.html
var staticFiles embed.FS

// Config for the development server
type Config struct {
	ListenAddr string
	BackendURL string
	AssetsDir  string
}

// Server hosts the swap page and the /swap proxy
type Server struct {
	cfg     Config
	router  *mux.Router
	metrics *proxyMetrics
	logger  logrus.FieldLogger
}

// New creates a server; it does not start listening
func New(cfg Config, logger logrus.FieldLogger) (*Server, error) {
	backend, err := url.Parse(cfg.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}
	if backend.Scheme == "" || backend.Host == "" {
		return nil, fmt.Errorf("backend url must be absolute, got %q", cfg.BackendURL)
	}

	s := &Server{
		cfg:     cfg,
		router:  mux.NewRouter(),
		metrics: newProxyMetrics(),
		logger:  logger,
	}

	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.Handle(client.SwapPath, s.metrics.instrument(s.newProxy(backend))).Methods(http.MethodPost)
	s.router.Handle("/metrics", s.metrics.handler()).Methods(http.MethodGet)
	if cfg.AssetsDir != "" {
		s.router.PathPrefix("/static/").Handler(
			http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.AssetsDir))),
		).Methods(http.MethodGet)
	}
	s.router.Use(s.logRequests)

	return s, nil
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("serving swap form on %s (backend %s)", s.cfg.ListenAddr, s.cfg.BackendURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) newProxy(backend *url.URL) http.Handler {
	proxy := httputil.NewSingleHostReverseProxy(backend)

	director := proxy.Director
	proxy.Director = func(r *http.Request) {
		director(r)
		r.Host = backend.Host
	}

	// The form shows the error field of any failed response, so transport
	// failures are answered in the backend's own error shape
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		s.logger.WithError(err).Error("swap backend unreachable")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": fmt.Sprintf("swap backend unreachable: %v", err),
		})
	}

	return proxy
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Debug("request served")
	})
}
