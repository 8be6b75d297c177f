package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/launchplanner/launchplanner-server/internal/config"
	"github.com/launchplanner/launchplanner-server/internal/logger"
	"github.com/launchplanner/launchplanner-server/internal/metrics"
	"github.com/launchplanner/launchplanner-server/internal/sse"
	"github.com/launchplanner/launchplanner-server/internal/store"
)

// SSEManagerHandle wraps the SSE manager with its context for lifecycle management.
type SSEManagerHandle struct {
	*sse.Manager
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *SSEManagerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := h.Manager.Shutdown(ctx)
	h.cancel()
	return err
}

// ProvideSSEManager provides the server-sent events manager.
func ProvideSSEManager(i do.Injector) (*SSEManagerHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	manager := sse.NewManager(log.Logger)

	// Start adds to the wait group before returning, so Shutdown always waits for the loop.
	ctx, cancel := context.WithCancel(context.Background())
	manager.Start(ctx)

	log.Info("SSE manager started")

	return &SSEManagerHandle{
		Manager: manager,
		cancel:  cancel,
	}, nil
}

// ProvideMetrics provides the Prometheus collectors.
func ProvideMetrics(i do.Injector) (*metrics.Metrics, error) {
	return metrics.New(), nil
}

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore opens the Badger database and wires events and metrics into it.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)
	m := do.MustInvoke[*metrics.Metrics](i)

	db, err := store.New(cfg.Store.DataPath, log.Logger, sseHandle.Manager)
	if err != nil {
		return nil, err
	}
	db.SetMetrics(m)

	stats, err := db.Stats(context.Background())
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("Database initialized",
		"path", cfg.Store.DataPath,
		"products", stats.Products,
		"goals", stats.Goals,
		"leads", stats.Leads,
	)

	return &StoreHandle{Store: db}, nil
}
