package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueRecord is a raw monetary record fetched from one sector's store
// (a booking, a bar order or a restaurant order) before tax splitting.
type RevenueRecord struct {
	ID              string
	CreatedAt       time.Time
	GrossAmount     decimal.Decimal
	PaymentMode     string
	ReferenceNumber string
}

// Period is an inclusive date range for a report request.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Today returns a period spanning the current calendar day, the default
// when a dashboard request omits the range.
func Today() Period {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Period{From: from, To: from.Add(24*time.Hour - time.Nanosecond)}
}

// Contains reports whether t falls inside the period (inclusive bounds).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && !t.After(p.To)
}

// SectorTotals holds the summed split amounts for one sector.
type SectorTotals struct {
	Net   decimal.Decimal `json:"net"`
	Tax   decimal.Decimal `json:"tax"`
	Gross decimal.Decimal `json:"gross"`
}

// OverviewTotals are the whole-business figures for a period.
type OverviewTotals struct {
	NetRevenue   decimal.Decimal `json:"netRevenue"`
	GrossSales   decimal.Decimal `json:"grossSales"`
	TaxCollected decimal.Decimal `json:"taxCollected"`
}

// OverviewSummary is the per-period dashboard aggregate: whole-business
// totals plus a net/tax/gross breakdown per sector. Derived, never stored.
type OverviewSummary struct {
	Period   Period                  `json:"period"`
	Totals   OverviewTotals          `json:"totals"`
	BySector map[Sector]SectorTotals `json:"bySector"`
}
