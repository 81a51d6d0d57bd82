package domain_test

import (
	"testing"

	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTaxRule_AppliesToSector(t *testing.T) {
	tests := []struct {
		name   string
		rule   domain.TaxRule
		sector domain.Sector
		want   bool
	}{
		{
			name:   "empty appliesTo covers all sectors",
			rule:   domain.TaxRule{Name: "VAT"},
			sector: domain.SectorBar,
			want:   true,
		},
		{
			name:   "listed sector is covered",
			rule:   domain.TaxRule{Name: "Levy", AppliesTo: []domain.Sector{domain.SectorRooms}},
			sector: domain.SectorRooms,
			want:   true,
		},
		{
			name:   "unlisted sector is excluded",
			rule:   domain.TaxRule{Name: "Levy", AppliesTo: []domain.Sector{domain.SectorRooms}},
			sector: domain.SectorRestaurant,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.AppliesToSector(tt.sector))
		})
	}
}

func TestSectorFilter_Sectors(t *testing.T) {
	assert.Equal(t, domain.AllSectors, domain.SectorFilterAll.Sectors())
	assert.Equal(t, []domain.Sector{domain.SectorBar}, domain.SectorFilterBar.Sectors())
	assert.Equal(t, domain.AllSectors, domain.SectorFilter("").Sectors())
}

func TestZeroTaxConfig(t *testing.T) {
	cfg := domain.ZeroTaxConfig()
	assert.False(t, cfg.Enabled)
	for _, sector := range domain.AllSectors {
		assert.True(t, cfg.RateFor(sector).IsZero())
	}
	assert.True(t, cfg.RateFor(domain.Sector("LAUNDRY")).IsZero())
}
