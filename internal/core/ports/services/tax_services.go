package services

import (
	"context"

	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
)

// TaxPolicySvcFacade resolves a business's stored tax settings into a
// normalized per-sector configuration.
type TaxPolicySvcFacade interface {
	// ResolveTaxConfig reads the recognized tax settings keys and resolves
	// them into a TaxConfig. It never fails: malformed or missing
	// configuration, and even a settings-store failure, degrade to the
	// zero-tax default so reporting keeps working.
	ResolveTaxConfig(ctx context.Context, businessID string) domain.TaxConfig
}
