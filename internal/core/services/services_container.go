package services

import (
	portsrepo "github.com/savannah-hms/hotel_backoffice/internal/core/ports/repositories"
	portssvc "github.com/savannah-hms/hotel_backoffice/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Tax policy comes first since the revenue pipeline depends on it.
	container.TaxPolicy = NewTaxPolicyService(repos.SettingsRepo)
	container.Revenue = NewRevenueService(repos.RevenueRepo, container.TaxPolicy)
	container.Export = NewExportService(container.Revenue)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TaxPolicySvcFacade = (*taxPolicyService)(nil)
	_ portssvc.RevenueSvcFacade   = (*revenueService)(nil)
	_ portssvc.ExportSvcFacade    = (*exportService)(nil)
)
