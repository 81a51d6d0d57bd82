package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	portsrepo "github.com/savannah-hms/hotel_backoffice/internal/core/ports/repositories"
	portssvc "github.com/savannah-hms/hotel_backoffice/internal/core/ports/services"
	"github.com/savannah-hms/hotel_backoffice/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

// revenueService implements the RevenueSvcFacade interface
type revenueService struct {
	BaseService
	revenueRepo portsrepo.RevenueRepository
	taxPolicy   portssvc.TaxPolicySvcFacade
}

// NewRevenueService creates a new revenue service
func NewRevenueService(revenueRepo portsrepo.RevenueRepository, taxPolicy portssvc.TaxPolicySvcFacade) portssvc.RevenueSvcFacade {
	return &revenueService{
		revenueRepo: revenueRepo,
		taxPolicy:   taxPolicy,
	}
}

// Ensure revenueService implements the RevenueSvcFacade interface
var _ portssvc.RevenueSvcFacade = (*revenueService)(nil)

// ConsolidateTransactions builds the period's transaction ledger. The tax
// config is resolved once per call, the selected sector reads are issued
// concurrently, and every raw record is split and rounded into an immutable
// Transaction. The merged stream is stable-sorted descending by date.
func (s *revenueService) ConsolidateTransactions(ctx context.Context, businessID string, period domain.Period, filter domain.SectorFilter) ([]domain.Transaction, error) {
	if period.To.Before(period.From) {
		return nil, fmt.Errorf("invalid period: from %s is after to %s", period.From, period.To)
	}

	taxConfig := s.taxPolicy.ResolveTaxConfig(ctx, businessID)
	sectors := filter.Sectors()

	// Fan out the sector reads; results land in fixed slots so repeated
	// calls on the same data always merge in the same order.
	perSector := make([][]domain.Transaction, len(sectors))
	g, gctx := errgroup.WithContext(ctx)
	for i, sector := range sectors {
		g.Go(func() error {
			records, err := s.readSectorRevenue(gctx, businessID, sector, period)
			if err != nil {
				return fmt.Errorf("failed to read %s revenue: %w", sector, err)
			}
			transactions := make([]domain.Transaction, 0, len(records))
			for _, record := range records {
				transactions = append(transactions, buildTransaction(record, sector, taxConfig))
			}
			perSector[i] = transactions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to consolidate transactions",
			slog.String("business_id", businessID),
			slog.String("sector_filter", string(filter)))
		return nil, err
	}

	consolidated := make([]domain.Transaction, 0)
	for _, transactions := range perSector {
		consolidated = append(consolidated, transactions...)
	}
	sort.SliceStable(consolidated, func(i, j int) bool {
		return consolidated[i].Date.After(consolidated[j].Date)
	})

	s.LogInfo(ctx, "Transactions consolidated",
		slog.String("business_id", businessID),
		slog.String("sector_filter", string(filter)),
		slog.Int("transaction_count", len(consolidated)))
	return consolidated, nil
}

// SummarizeOverview folds the whole-business ledger into per-sector and
// period totals. Sums are taken first and rounded once at the end, so
// rounding error never compounds across many small transactions.
func (s *revenueService) SummarizeOverview(ctx context.Context, businessID string, period domain.Period) (*domain.OverviewSummary, error) {
	transactions, err := s.ConsolidateTransactions(ctx, businessID, period, domain.SectorFilterAll)
	if err != nil {
		return nil, err
	}

	bySector := make(map[domain.Sector]domain.SectorTotals, len(domain.AllSectors))
	for _, sector := range domain.AllSectors {
		bySector[sector] = domain.SectorTotals{}
	}
	for _, txn := range transactions {
		totals := bySector[txn.Sector]
		totals.Net = totals.Net.Add(txn.NetAmount)
		totals.Tax = totals.Tax.Add(txn.VATAmount)
		totals.Gross = totals.Gross.Add(txn.GrossAmount)
		bySector[txn.Sector] = totals
	}

	summary := &domain.OverviewSummary{
		Period:   period,
		BySector: make(map[domain.Sector]domain.SectorTotals, len(bySector)),
	}
	for sector, totals := range bySector {
		summary.Totals.NetRevenue = summary.Totals.NetRevenue.Add(totals.Net)
		summary.Totals.TaxCollected = summary.Totals.TaxCollected.Add(totals.Tax)
		summary.Totals.GrossSales = summary.Totals.GrossSales.Add(totals.Gross)
		summary.BySector[sector] = domain.SectorTotals{
			Net:   accounting.RoundMoney(totals.Net),
			Tax:   accounting.RoundMoney(totals.Tax),
			Gross: accounting.RoundMoney(totals.Gross),
		}
	}
	summary.Totals.NetRevenue = accounting.RoundMoney(summary.Totals.NetRevenue)
	summary.Totals.TaxCollected = accounting.RoundMoney(summary.Totals.TaxCollected)
	summary.Totals.GrossSales = accounting.RoundMoney(summary.Totals.GrossSales)

	return summary, nil
}

// readSectorRevenue dispatches to the sector's finder on the revenue
// repository. Room revenue is recognized at booking-creation time for
// bookings in the active status set; the repository enforces that filter.
func (s *revenueService) readSectorRevenue(ctx context.Context, businessID string, sector domain.Sector, period domain.Period) ([]domain.RevenueRecord, error) {
	switch sector {
	case domain.SectorRooms:
		return s.revenueRepo.FindRoomRevenue(ctx, businessID, period)
	case domain.SectorBar:
		return s.revenueRepo.FindBarRevenue(ctx, businessID, period)
	case domain.SectorRestaurant:
		return s.revenueRepo.FindRestaurantRevenue(ctx, businessID, period)
	default:
		return nil, fmt.Errorf("unknown sector %q", sector)
	}
}

// buildTransaction applies the sector's inclusive tax rate to one raw
// record and rounds the result for placement in the ledger.
func buildTransaction(record domain.RevenueRecord, sector domain.Sector, taxConfig domain.TaxConfig) domain.Transaction {
	split := accounting.RoundSplit(accounting.SplitGross(record.GrossAmount, taxConfig.Enabled, taxConfig.RateFor(sector)))

	referenceID := record.ReferenceNumber
	if referenceID == "" {
		referenceID = record.ID
	}
	if referenceID == "" {
		referenceID = domain.UnknownReference
	}

	return domain.Transaction{
		Date:        record.CreatedAt,
		ReferenceID: referenceID,
		Sector:      sector,
		NetAmount:   split.Net,
		VATAmount:   split.Tax,
		GrossAmount: split.Gross,
		PaymentMode: record.PaymentMode,
	}
}
