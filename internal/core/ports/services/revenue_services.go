package services

import (
	"context"

	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
)

// RevenueSvcFacade consolidates raw sector revenue into the reporting
// ledger and the dashboard overview.
type RevenueSvcFacade interface {
	// ConsolidateTransactions merges the selected sectors' raw records into
	// one Transaction stream with tax split per record, sorted descending by
	// date (most recent first). This order is the canonical ledger order for
	// all downstream consumers.
	ConsolidateTransactions(ctx context.Context, businessID string, period domain.Period, filter domain.SectorFilter) ([]domain.Transaction, error)

	// SummarizeOverview folds the consolidated stream across all three
	// sectors into period totals and per-sector sub-totals. An overview is
	// always whole-business regardless of any caller-supplied filter.
	SummarizeOverview(ctx context.Context, businessID string, period domain.Period) (*domain.OverviewSummary, error)
}
