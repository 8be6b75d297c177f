package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/launchplanner/launchplanner-server/internal/store"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status with component checks",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// ComponentHealth describes the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status" doc:"Component status: healthy, degraded, or unhealthy"`
	Latency string `json:"latency,omitempty" doc:"Response time for this component"`
	Message string `json:"message,omitempty" doc:"Additional status information"`
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status     string                     `json:"status" doc:"Overall status: healthy, degraded, or unhealthy"`
	Components map[string]ComponentHealth `json:"components" doc:"Individual component statuses"`
	Records    *store.CollectionStats     `json:"records,omitempty" doc:"Record count per collection"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Status int
	Body   HealthResponse
}

func (s *Server) handleHealthCheck(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	components := make(map[string]ComponentHealth)
	overall := "healthy"

	dbHealth, stats := s.checkStore(ctx)
	components["store"] = dbHealth
	if dbHealth.Status != "healthy" {
		overall = "unhealthy"
	}

	sseHealth := s.checkSSEManager()
	components["sse"] = sseHealth
	if sseHealth.Status != "healthy" && overall == "healthy" {
		overall = "degraded"
	}

	status := http.StatusOK
	if overall == "unhealthy" {
		status = http.StatusServiceUnavailable
	}

	return &HealthOutput{
		Status: status,
		Body: HealthResponse{
			Status:     overall,
			Components: components,
			Records:    stats,
		},
	}, nil
}

// checkStore verifies Badger is readable and counts the stored records.
func (s *Server) checkStore(ctx context.Context) (ComponentHealth, *store.CollectionStats) {
	if s.store == nil {
		return ComponentHealth{
			Status:  "unhealthy",
			Message: "store not configured",
		}, nil
	}

	start := time.Now()
	if err := s.store.Ping(ctx); err != nil {
		return ComponentHealth{
			Status:  "unhealthy",
			Latency: time.Since(start).String(),
			Message: "store unreachable",
		}, nil
	}
	stats, err := s.store.Stats(ctx)
	latency := time.Since(start)

	if err != nil {
		return ComponentHealth{
			Status:  "unhealthy",
			Latency: latency.String(),
			Message: "store read failed",
		}, nil
	}

	return ComponentHealth{
		Status:  "healthy",
		Latency: latency.String(),
	}, stats
}

// checkSSEManager reports the event stream state.
func (s *Server) checkSSEManager() ComponentHealth {
	if s.sseManager == nil {
		return ComponentHealth{
			Status:  "degraded",
			Message: "event stream not configured",
		}
	}

	return ComponentHealth{
		Status:  "healthy",
		Message: pluralize(s.sseManager.ClientCount(), "client") + " connected",
	}
}
