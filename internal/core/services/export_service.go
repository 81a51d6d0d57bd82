package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/savannah-hms/hotel_backoffice/internal/apperrors"
	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	portssvc "github.com/savannah-hms/hotel_backoffice/internal/core/ports/services"
	"github.com/savannah-hms/hotel_backoffice/internal/utils/accounting"
)

// complianceCSVHeader is the column layout of the ledger feed consumed by
// external accounting software.
var complianceCSVHeader = []string{"date", "reference", "sector", "net_amount", "vat_amount", "gross_amount", "payment_mode"}

// exportService implements the ExportSvcFacade interface
type exportService struct {
	BaseService
	revenue portssvc.RevenueSvcFacade
}

// NewExportService creates a new export service
func NewExportService(revenue portssvc.RevenueSvcFacade) portssvc.ExportSvcFacade {
	return &exportService{revenue: revenue}
}

// Ensure exportService implements the ExportSvcFacade interface
var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// WriteComplianceCSV serializes the period's ledger as CSV. Every row must
// pass the reconciliation check and carry a payment mode before it is
// written; the first violation aborts the whole export, because a silently
// unbalanced row corrupts double-entry bookkeeping downstream. Rows are
// written ascending by date for presentation; the consolidated stream
// itself stays descending.
func (s *exportService) WriteComplianceCSV(ctx context.Context, w io.Writer, businessID string, period domain.Period, filter domain.SectorFilter) error {
	if period.From.IsZero() || period.To.IsZero() {
		return fmt.Errorf("%w: compliance export requires an explicit period", apperrors.ErrValidation)
	}

	transactions, err := s.revenue.ConsolidateTransactions(ctx, businessID, period, filter)
	if err != nil {
		return err
	}

	// Validate everything before the first byte is written so a failed
	// export never leaves a truncated file behind.
	for _, txn := range transactions {
		if err := accounting.AssertBalanced(txn); err != nil {
			s.LogError(ctx, err, "Compliance export aborted: unbalanced transaction",
				slog.String("business_id", businessID),
				slog.String("reference_id", txn.ReferenceID),
				slog.String("sector", string(txn.Sector)))
			return err
		}
		if txn.PaymentMode == "" {
			err := &apperrors.PaymentModeError{ReferenceID: txn.ReferenceID}
			s.LogError(ctx, err, "Compliance export aborted: missing payment mode",
				slog.String("business_id", businessID),
				slog.String("reference_id", txn.ReferenceID))
			return err
		}
	}

	rows := make([]domain.Transaction, len(transactions))
	copy(rows, transactions)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	writer := csv.NewWriter(w)
	if err := writer.Write(complianceCSVHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, txn := range rows {
		record := []string{
			txn.Date.Format(time.RFC3339),
			txn.ReferenceID,
			string(txn.Sector),
			txn.NetAmount.StringFixed(2),
			txn.VATAmount.StringFixed(2),
			txn.GrossAmount.StringFixed(2),
			txn.PaymentMode,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write export row %s: %w", txn.ReferenceID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}

	s.LogInfo(ctx, "Compliance export written",
		slog.String("business_id", businessID),
		slog.Int("row_count", len(rows)))
	return nil
}
