package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/search"
)

// errBadRequest tags request fields that are malformed or out of range,
// as opposed to a board that cannot be searched.
var errBadRequest = errors.New("bad request")

// SolveRequest describes a board either as a glyph Layout or as Rows plus
// Start, End and Barriers. A nil Algorithm selects the configured default.
type SolveRequest struct {
	Algorithm *search.Algorithm `json:"algorithm,omitempty"`
	Rows      int               `json:"rows,omitempty"`
	Start     *grid.Position    `json:"start,omitempty"`
	End       *grid.Position    `json:"end,omitempty"`
	Barriers  []grid.Position   `json:"barriers,omitempty"`
	Layout    string            `json:"layout,omitempty"`
}

// SolveResponse reports one run. Grid holds the marked board, one glyph
// string per row.
type SolveResponse struct {
	RunID       string           `json:"runId"`
	Algorithm   search.Algorithm `json:"algorithm"`
	Outcome     search.Outcome   `json:"outcome"`
	Path        []grid.Position  `json:"path"`
	Length      int              `json:"length"`
	Steps       int              `json:"steps"`
	Expanded    int              `json:"expanded"`
	TimeTakenMs float64          `json:"timeTakenMs"`
	Grid        []string         `json:"grid"`
	// Barriers lists the board's Barrier cells in row-major order.
	Barriers []grid.Position `json:"barriers"`
	// Breach lists the fewest barriers whose removal would connect the
	// endpoints; set only when the outcome is exhausted.
	Breach []grid.Position `json:"breach,omitempty"`
}

func (s *Server) handleSolve(c *gin.Context) {
	runID := uuid.New().String()
	c.Header("X-Run-ID", runID)

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.reject(c, fmt.Errorf("%w: invalid request body: %w", errBadRequest, err))
		return
	}

	kind := s.cfg.Algorithm
	if req.Algorithm != nil {
		kind = *req.Algorithm
	}

	g, start, end, err := s.buildBoard(req)
	if err != nil {
		s.reject(c, err)
		return
	}

	ctx := c.Request.Context()
	if s.cfg.Server.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Server.Timeout)
		defer cancel()
	}

	began := time.Now()
	res, err := search.Run(kind, g, start, end, search.WithContext(ctx))
	took := time.Since(began)
	if err != nil {
		s.reject(c, err)
		return
	}

	algo := res.Algorithm.String()
	s.metrics.solveTotal.WithLabelValues(algo, res.Outcome.String()).Inc()
	s.metrics.solveDuration.WithLabelValues(algo).Observe(took.Seconds())
	s.metrics.solveExpanded.WithLabelValues(algo).Observe(float64(res.Expanded))

	s.logger.Info("solved",
		"run", runID,
		"algorithm", algo,
		"rows", g.Rows(),
		"outcome", res.Outcome,
		"length", res.Len(),
		"expanded", res.Expanded,
	)

	resp := SolveResponse{
		RunID:       runID,
		Algorithm:   res.Algorithm,
		Outcome:     res.Outcome,
		Path:        res.Path,
		Length:      res.Len(),
		Steps:       res.Steps,
		Expanded:    res.Expanded,
		TimeTakenMs: float64(took.Microseconds()) / 1000.0,
		Grid:        strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n"),
		Barriers:    g.Barriers(),
	}
	if res.Outcome == search.Exhausted {
		resp.Breach, _ = g.Breach(start, end)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleAlgorithms(c *gin.Context) {
	names := make([]string, 0, 3)
	for _, a := range search.Algorithms() {
		names = append(names, a.String())
	}
	c.JSON(http.StatusOK, gin.H{
		"algorithms": names,
		"default":    s.cfg.Algorithm,
	})
}

// reject answers 400 with {"error": ...} and counts the reason.
func (s *Server) reject(c *gin.Context, err error) {
	s.metrics.solveErrors.WithLabelValues(rejectReason(err)).Inc()
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// rejectReason labels err for the solve_errors metric:
// "request" for malformed fields, "configuration" for boards the engine
// refuses, "board" for layouts and positions the grid rejects.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, errBadRequest):
		return "request"
	case errors.Is(err, search.ErrInvalidConfiguration):
		return "configuration"
	default:
		return "board"
	}
}

// buildBoard turns a request into a refreshed grid and its endpoints.
func (s *Server) buildBoard(req SolveRequest) (*grid.Grid, grid.Position, grid.Position, error) {
	var none grid.Position

	if req.Layout != "" {
		if req.Rows != 0 || req.Start != nil || req.End != nil || len(req.Barriers) > 0 {
			return nil, none, none, fmt.Errorf("%w: layout excludes rows, start, end and barriers", errBadRequest)
		}
		g, err := grid.Parse(req.Layout)
		if err != nil {
			return nil, none, none, err
		}
		if g.Rows() > config.MaxRows {
			return nil, none, none, fmt.Errorf("%w: %d rows exceeds %d", errBadRequest, g.Rows(), config.MaxRows)
		}
		start, ok := g.Start()
		if !ok {
			return nil, none, none, fmt.Errorf("%w: layout has no start", search.ErrInvalidConfiguration)
		}
		end, ok := g.End()
		if !ok {
			return nil, none, none, fmt.Errorf("%w: layout has no end", search.ErrInvalidConfiguration)
		}
		return g, start, end, nil
	}

	rows := req.Rows
	if rows == 0 {
		rows = s.cfg.Rows
	}
	if rows < 0 || rows > config.MaxRows {
		return nil, none, none, fmt.Errorf("%w: rows must be between 1 and %d", errBadRequest, config.MaxRows)
	}
	if req.Start == nil || req.End == nil {
		return nil, none, none, fmt.Errorf("%w: start and end are required", search.ErrInvalidConfiguration)
	}

	g, err := grid.New(rows, s.cfg.Width)
	if err != nil {
		return nil, none, none, err
	}
	for _, p := range req.Barriers {
		if err := g.SetState(p, grid.Barrier); err != nil {
			return nil, none, none, fmt.Errorf("barrier %v: %w", p, err)
		}
	}
	// endpoints win over barriers placed on the same cell
	if err := g.SetState(*req.Start, grid.Start); err != nil {
		return nil, none, none, fmt.Errorf("%w: start %v: %v", search.ErrInvalidConfiguration, *req.Start, err)
	}
	if err := g.SetState(*req.End, grid.End); err != nil {
		return nil, none, none, fmt.Errorf("%w: end %v: %v", search.ErrInvalidConfiguration, *req.End, err)
	}
	g.RefreshNeighbors()

	return g, *req.Start, *req.End, nil
}
