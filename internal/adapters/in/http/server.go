package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server exposes the read-side HTTP API: service health and the history
// of archived runs.
type Server struct {
	getArchivedRunsHandler queries.GetArchivedRunsQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(getArchivedRunsHandler queries.GetArchivedRunsQueryHandler) *Server {
	return &Server{
		getArchivedRunsHandler: getArchivedRunsHandler,
	}
}

// RegisterRoutes attaches the server's routes to an Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/api/v1/runs", s.GetRuns)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type runResponse struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Labels    int       `json:"labels"`
	Artifacts int       `json:"artifacts"`
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetRuns handles GET /api/v1/runs - lists archived runs, oldest first.
func (s *Server) GetRuns(ctx echo.Context) error {
	query := queries.NewGetArchivedRunsQuery()

	runs, err := s.getArchivedRunsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve runs",
		})
	}

	response := make([]runResponse, 0, len(runs))
	for _, run := range runs {
		response = append(response, runResponse{
			RunID:     run.RunID,
			StartedAt: run.StartedAt,
			Labels:    run.Labels,
			Artifacts: run.Artifacts,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
