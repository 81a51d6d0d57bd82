package dto

import (
	"time"

	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse represents one ledger row in a report response
type TransactionResponse struct {
	Date        time.Time       `json:"date"`
	ReferenceID string          `json:"referenceID"`
	Sector      string          `json:"sector"`
	NetAmount   decimal.Decimal `json:"netAmount"`
	VATAmount   decimal.Decimal `json:"vatAmount"`
	GrossAmount decimal.Decimal `json:"grossAmount"`
	PaymentMode string          `json:"paymentMode"`
}

// TransactionListResponse represents the consolidated ledger for a period
type TransactionListResponse struct {
	FromDate     string                `json:"fromDate"`
	ToDate       string                `json:"toDate"`
	SectorFilter string                `json:"sectorFilter"`
	Transactions []TransactionResponse `json:"transactions"`
}

// SectorTotalsResponse represents one sector's summed amounts
type SectorTotalsResponse struct {
	Net   decimal.Decimal `json:"net"`
	Tax   decimal.Decimal `json:"tax"`
	Gross decimal.Decimal `json:"gross"`
}

// OverviewResponse represents the whole-business overview for a period
type OverviewResponse struct {
	FromDate string                          `json:"fromDate"`
	ToDate   string                          `json:"toDate"`
	Totals   OverviewTotalsResponse          `json:"totals"`
	BySector map[string]SectorTotalsResponse `json:"bySector"`
}

// OverviewTotalsResponse represents the period totals of an overview
type OverviewTotalsResponse struct {
	NetRevenue   decimal.Decimal `json:"netRevenue"`
	GrossSales   decimal.Decimal `json:"grossSales"`
	TaxCollected decimal.Decimal `json:"taxCollected"`
}

// TaxConfigResponse represents a business's resolved tax policy
type TaxConfigResponse struct {
	Enabled       bool                       `json:"enabled"`
	RatePerSector map[string]decimal.Decimal `json:"ratePerSector"`
}

// ToTransactionListResponse converts consolidated transactions to the response DTO
func ToTransactionListResponse(transactions []domain.Transaction, period domain.Period, filter domain.SectorFilter) TransactionListResponse {
	rows := make([]TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		rows = append(rows, TransactionResponse{
			Date:        txn.Date,
			ReferenceID: txn.ReferenceID,
			Sector:      string(txn.Sector),
			NetAmount:   txn.NetAmount,
			VATAmount:   txn.VATAmount,
			GrossAmount: txn.GrossAmount,
			PaymentMode: txn.PaymentMode,
		})
	}
	return TransactionListResponse{
		FromDate:     period.From.Format("2006-01-02"),
		ToDate:       period.To.Format("2006-01-02"),
		SectorFilter: string(filter),
		Transactions: rows,
	}
}

// ToOverviewResponse converts an overview summary to the response DTO
func ToOverviewResponse(summary *domain.OverviewSummary) OverviewResponse {
	bySector := make(map[string]SectorTotalsResponse, len(summary.BySector))
	for sector, totals := range summary.BySector {
		bySector[string(sector)] = SectorTotalsResponse{
			Net:   totals.Net,
			Tax:   totals.Tax,
			Gross: totals.Gross,
		}
	}
	return OverviewResponse{
		FromDate: summary.Period.From.Format("2006-01-02"),
		ToDate:   summary.Period.To.Format("2006-01-02"),
		Totals: OverviewTotalsResponse{
			NetRevenue:   summary.Totals.NetRevenue,
			GrossSales:   summary.Totals.GrossSales,
			TaxCollected: summary.Totals.TaxCollected,
		},
		BySector: bySector,
	}
}

// ToTaxConfigResponse converts a resolved tax config to the response DTO
func ToTaxConfigResponse(cfg domain.TaxConfig) TaxConfigResponse {
	rates := make(map[string]decimal.Decimal, len(cfg.RatePerSector))
	for sector, rate := range cfg.RatePerSector {
		rates[string(sector)] = rate
	}
	return TaxConfigResponse{
		Enabled:       cfg.Enabled,
		RatePerSector: rates,
	}
}
