package services

import (
	"context"
	"io"

	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
)

// ExportSvcFacade produces compliance-grade exports for external
// accounting systems.
type ExportSvcFacade interface {
	// WriteComplianceCSV serializes the period's consolidated transactions
	// as a CSV ledger feed. Every row is reconciliation-checked and must
	// carry a payment mode before it is written; the whole export aborts on
	// the first row that fails either check.
	WriteComplianceCSV(ctx context.Context, w io.Writer, businessID string, period domain.Period, filter domain.SectorFilter) error
}
