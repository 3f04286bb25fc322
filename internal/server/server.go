// Package server is the web dashboard: it holds uploaded workbooks in memory
// and renders the assessment tabs, charts and priority export per request.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/huangsam/maturity/internal/chart"
	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/internal/workbook"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PageTitle is shown on every dashboard page.
const PageTitle = "Dashboard for Lean and Digital Transformation"

const (
	maxUploadBytes    = 32 << 20
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server serves the dashboard for the workbooks in its registry.
type Server struct {
	cfg       *contract.Config
	logger    *zap.Logger
	registry  *Registry
	pages     *template.Template
	opts      workbook.Options
	chartSize chart.Size

	mu       sync.Mutex
	watchers []*Watcher
}

// New creates a dashboard server with an empty registry.
func New(cfg *contract.Config, logger *zap.Logger) (*Server, error) {
	pages, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	width, height := cfg.ChartWidth, cfg.ChartHeight
	if width <= 0 {
		width = contract.DefaultChartWidth
	}
	if height <= 0 {
		height = contract.DefaultChartHeight
	}

	return &Server{
		cfg:      cfg,
		logger:   logger,
		registry: NewRegistry(),
		pages:    pages,
		opts: workbook.Options{
			QuestionSheet: cfg.QuestionSheet,
			OverviewSheet: cfg.OverviewSheet,
		},
		chartSize: chart.SizeInches(width, height),
	}, nil
}

// Registry returns the workbooks served.
func (s *Server) Registry() *Registry {
	return s.registry
}

// LoadFile adds the workbook at path. With watching enabled the entry is
// reloaded whenever the file changes while the server runs.
func (s *Server) LoadFile(path string) (*Entry, error) {
	wb, err := workbook.Load(path, s.opts)
	if err != nil {
		return nil, err
	}
	entry := s.registry.Add("", path, wb)
	s.logger.Info("workbook loaded",
		zap.String("id", entry.ID),
		zap.String("path", path),
		zap.Int("questions", len(wb.Questions)),
	)

	if s.cfg.Watch {
		s.mu.Lock()
		s.watchers = append(s.watchers, NewWatcher(entry, s.opts, s.registry, s.logger))
		s.mu.Unlock()
	}
	return entry, nil
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully. File
// watchers run alongside and stop with the server.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          zap.NewStdLog(s.logger),
	}

	s.mu.Lock()
	watchers := append([]*Watcher(nil), s.watchers...)
	s.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("dashboard listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("dashboard shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	for _, w := range watchers {
		g.Go(func() error { return w.Run(gctx) })
	}
	return g.Wait()
}

// Handler returns the routes of the dashboard.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /w/{id}", s.handleWorkbook)
	mux.HandleFunc("GET /w/{id}/chart/{file}", s.handleChart)
	mux.HandleFunc("GET /w/{id}/priorities.xlsx", s.handlePrioritiesExport)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.logRequests(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
