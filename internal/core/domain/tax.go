package domain

import "github.com/shopspring/decimal"

// TaxRule is one admin-configured tax (VAT, tourism levy, service charge).
// Rules are stored as a JSON array under the tax_rules settings key.
type TaxRule struct {
	Name    string          `json:"name"`
	Rate    decimal.Decimal `json:"rate"`      // decimal fraction, e.g. 0.18 for 18%
	Enabled bool            `json:"enabled"`
	// AppliesTo lists the sectors this rule covers. Empty means all sectors.
	AppliesTo []Sector `json:"appliesTo,omitempty"`
}

// AppliesToSector reports whether the rule covers the given sector.
func (r TaxRule) AppliesToSector(sector Sector) bool {
	if len(r.AppliesTo) == 0 {
		return true
	}
	for _, s := range r.AppliesTo {
		if s == sector {
			return true
		}
	}
	return false
}

// TaxConfig is a business's resolved tax policy: one effective inclusive
// rate per sector. When Enabled is false all rates are zero.
type TaxConfig struct {
	Enabled       bool                       `json:"enabled"`
	RatePerSector map[Sector]decimal.Decimal `json:"ratePerSector"`
}

// ZeroTaxConfig is the resolver's fallback: no tax on any sector.
func ZeroTaxConfig() TaxConfig {
	return TaxConfig{
		Enabled: false,
		RatePerSector: map[Sector]decimal.Decimal{
			SectorRooms:      decimal.Zero,
			SectorBar:        decimal.Zero,
			SectorRestaurant: decimal.Zero,
		},
	}
}

// RateFor returns the effective rate for a sector, zero if unknown.
func (c TaxConfig) RateFor(sector Sector) decimal.Decimal {
	if rate, ok := c.RatePerSector[sector]; ok {
		return rate
	}
	return decimal.Zero
}
