// Package di provides dependency injection configuration for the launch planner server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/launchplanner/launchplanner-server/internal/config"
	"github.com/launchplanner/launchplanner-server/internal/di/providers"
	"github.com/launchplanner/launchplanner-server/internal/logger"
	"github.com/launchplanner/launchplanner-server/internal/metrics"
	"github.com/launchplanner/launchplanner-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideMetrics)

	// Database layer
	do.Provide(injector, providers.ProvideSSEManager)
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideProductService)
	do.Provide(injector, providers.ProvideGoalService)
	do.Provide(injector, providers.ProvideLeadService)
	do.Provide(injector, providers.ProvideMaintenanceService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and starts the HTTP server.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*metrics.Metrics](injector)
	_ = do.MustInvoke[*providers.SSEManagerHandle](injector)
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}

	_ = do.MustInvoke[*service.ProductService](injector)
	_ = do.MustInvoke[*service.GoalService](injector)
	_ = do.MustInvoke[*service.LeadService](injector)
	_ = do.MustInvoke[*service.MaintenanceService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
