// Package server exposes the search engine over HTTP with gin.
//
// Routes:
//
//	POST /api/v1/solve       run one search on a board sent in the body
//	GET  /api/v1/algorithms  list strategy names, default first
//	GET  /healthz            liveness probe
//	GET  /metrics            Prometheus metrics (when enabled)
//
// Every request builds its own grid, so requests never share state.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/internal/config"
)

// Server owns the gin engine and its collaborators.
type Server struct {
	cfg     config.Config
	logger  *log.Logger
	metrics *metrics
	engine  *gin.Engine
}

// New wires routes and middleware. The gin mode is left to the caller.
func New(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: newMetrics(),
		engine:  gin.New(),
	}

	s.engine.Use(gin.Recovery(), requestLogger(logger), CORSMiddleware())

	api := s.engine.Group("/api/v1")
	api.POST("/solve", s.handleSolve)
	api.GET("/algorithms", s.handleAlgorithms)

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Server.Metrics {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
	}

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on cfg.Server.Addr until ctx is done, then shuts down
// gracefully within five seconds.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr, "metrics", s.cfg.Server.Metrics)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return ctx.Err()
}

// CORSMiddleware allows browser front ends on any origin to call the API.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Run-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestLogger routes gin's access log through the shared logger.
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		kv := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"took", time.Since(start).Round(time.Microsecond),
		}
		if id := c.Writer.Header().Get("X-Run-ID"); id != "" {
			kv = append(kv, "run", id)
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("request", kv...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.Warn("request", kv...)
		default:
			logger.Debug("request", kv...)
		}
	}
}
