package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/launchplanner/launchplanner-server/internal/api"
	"github.com/launchplanner/launchplanner-server/internal/config"
	"github.com/launchplanner/launchplanner-server/internal/logger"
	"github.com/launchplanner/launchplanner-server/internal/metrics"
	"github.com/launchplanner/launchplanner-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	api *api.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	defer h.api.Close()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server and starts listening.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)
	m := do.MustInvoke[*metrics.Metrics](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Product:     do.MustInvoke[*service.ProductService](i),
		Goal:        do.MustInvoke[*service.GoalService](i),
		Lead:        do.MustInvoke[*service.LeadService](i),
		Maintenance: do.MustInvoke[*service.MaintenanceService](i),
	}

	handler := api.NewServer(storeHandle.Store, services, sseHandle.Manager, m, api.Options{
		CORSOrigins:        cfg.HTTP.CORSOrigins,
		RateLimitPerMinute: cfg.HTTP.RateLimitPerMinute,
	}, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("HTTP server error")
		}
	}()

	return &HTTPServerHandle{Server: srv, api: handler}, nil
}
