// Package server serves the estimator over HTTP: a single-screen HTML page,
// a JSON API, the report download and the distribution chart.
package server

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quibble-ai/callcost/pkg/config"
	"github.com/quibble-ai/callcost/pkg/estimator"
	"github.com/quibble-ai/callcost/pkg/metrics"
	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/quibble-ai/callcost/pkg/report"
	"go.uber.org/zap"
)

const surface = "http"

// Server is the callcost HTTP server.
type Server struct {
	cfg       *config.Config
	estimator *estimator.Estimator
	logger    *zap.Logger
	page      *template.Template
	router    chi.Router
}

// New creates a Server wired with all dependencies.
func New(cfg *config.Config, est *estimator.Estimator, logger *zap.Logger) (*Server, error) {
	page, err := parsePage()
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:       cfg,
		estimator: est,
		logger:    logger,
		page:      page,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/report", s.handleReport)
	r.Get("/chart.svg", s.handleChart)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/models", s.handleModels)
		r.Get("/estimate", s.handleEstimate)
		r.Post("/estimate", s.handleEstimate)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the server with graceful shutdown support.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("callcost listening", zap.String("addr", s.cfg.Listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// estimate parses, validates and computes one request's input.
func (s *Server) estimate(r *http.Request) (models.EstimateInput, models.EstimateResult, error) {
	in, err := inputFromRequest(r, s.cfg.Defaults)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(surface).Inc()
		return in, models.EstimateResult{}, err
	}
	res, err := s.estimator.Estimate(in)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(surface).Inc()
		return in, res, err
	}
	metrics.ObserveEstimate(surface, res)
	return in, res, nil
}

func (s *Server) handleModels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, modelsResponse{
		Models:   s.estimator.Table().Entries(),
		Usage:    s.cfg.Pricing.Usage,
		Limits:   s.estimator.Limits(),
		Defaults: s.cfg.Defaults,
	})
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	in, res, err := s.estimate(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report.NewSummary(in, res))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	in, res, err := s.estimate(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	metrics.ReportsTotal.WithLabelValues(surface).Inc()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+s.cfg.Report.Filename+`"`)
	_, _ = w.Write([]byte(report.Report(in, res)))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	_, res, err := s.estimate(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(report.PieSVG(res)))
}
