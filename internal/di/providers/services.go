package providers

import (
	"github.com/samber/do/v2"

	"github.com/launchplanner/launchplanner-server/internal/logger"
	"github.com/launchplanner/launchplanner-server/internal/service"
)

// ProvideProductService provides the product service.
func ProvideProductService(i do.Injector) (*service.ProductService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewProductService(storeHandle.Store, log.Logger), nil
}

// ProvideGoalService provides the goal service.
func ProvideGoalService(i do.Injector) (*service.GoalService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewGoalService(storeHandle.Store, log.Logger), nil
}

// ProvideLeadService provides the lead service.
func ProvideLeadService(i do.Injector) (*service.LeadService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewLeadService(storeHandle.Store, log.Logger), nil
}

// ProvideMaintenanceService provides the reconcile and stats service.
func ProvideMaintenanceService(i do.Injector) (*service.MaintenanceService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewMaintenanceService(storeHandle.Store, log.Logger), nil
}
