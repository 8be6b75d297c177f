package api

import "github.com/launchplanner/launchplanner-server/internal/service"

// Services groups the business services used by the API server.
type Services struct {
	Product     *service.ProductService
	Goal        *service.GoalService
	Lead        *service.LeadService
	Maintenance *service.MaintenanceService
}
