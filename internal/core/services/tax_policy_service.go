package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	portsrepo "github.com/savannah-hms/hotel_backoffice/internal/core/ports/repositories"
	portssvc "github.com/savannah-hms/hotel_backoffice/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// taxPolicyService implements the TaxPolicySvcFacade interface
type taxPolicyService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewTaxPolicyService creates a new tax policy service
func NewTaxPolicyService(settingsRepo portsrepo.SettingsRepository) portssvc.TaxPolicySvcFacade {
	return &taxPolicyService{settingsRepo: settingsRepo}
}

// Ensure taxPolicyService implements the TaxPolicySvcFacade interface
var _ portssvc.TaxPolicySvcFacade = (*taxPolicyService)(nil)

// ResolveTaxConfig resolves the business's stored tax settings into a
// per-sector configuration. The rule-list scheme takes precedence whenever
// at least one rule is enabled; otherwise the legacy single-rate keys are
// used. Any failure along the way degrades to the zero-tax default: a bad
// settings edit must cost the business its tax line, not its reports.
func (s *taxPolicyService) ResolveTaxConfig(ctx context.Context, businessID string) domain.TaxConfig {
	settings, err := s.settingsRepo.FindSettings(ctx, businessID, domain.TaxSettingKeys)
	if err != nil {
		s.LogWarn(ctx, "Failed to read tax settings, falling back to zero tax",
			slog.String("business_id", businessID),
			slog.String("error", err.Error()))
		return domain.ZeroTaxConfig()
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}

	if cfg, ok := resolveFromRuleList(values[domain.SettingTaxRules]); ok {
		return cfg
	}
	return resolveFromLegacyKeys(values)
}

// resolveFromRuleList parses the tax_rules JSON array and resolves the
// per-sector rates as the sum of every enabled rule applying to that
// sector. The second return value is false when the scheme does not apply:
// absent or malformed JSON, or no enabled rule.
func resolveFromRuleList(raw string) (domain.TaxConfig, bool) {
	if raw == "" {
		return domain.TaxConfig{}, false
	}

	var rules []domain.TaxRule
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return domain.TaxConfig{}, false
	}

	cfg := domain.ZeroTaxConfig()
	anyEnabled := false
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		anyEnabled = true
		if rule.Rate.LessThanOrEqual(decimal.Zero) {
			continue
		}
		for _, sector := range domain.AllSectors {
			if rule.AppliesToSector(sector) {
				cfg.RatePerSector[sector] = cfg.RatePerSector[sector].Add(rule.Rate)
			}
		}
	}
	if !anyEnabled {
		return domain.TaxConfig{}, false
	}

	for _, rate := range cfg.RatePerSector {
		if rate.GreaterThan(decimal.Zero) {
			cfg.Enabled = true
			break
		}
	}
	return cfg, true
}

// resolveFromLegacyKeys resolves the single-rate scheme: one global enabled
// flag, one rate, and a per-sector boolean override defaulting to true.
func resolveFromLegacyKeys(values map[string]string) domain.TaxConfig {
	rate := parseRate(values[domain.SettingTaxRate])
	enabled := parseBoolSetting(values[domain.SettingTaxEnabled], false) && rate.GreaterThan(decimal.Zero)
	if !enabled {
		return domain.ZeroTaxConfig()
	}

	cfg := domain.ZeroTaxConfig()
	overrides := map[domain.Sector]string{
		domain.SectorRooms:      domain.SettingTaxApplyRooms,
		domain.SectorBar:        domain.SettingTaxApplyBar,
		domain.SectorRestaurant: domain.SettingTaxApplyRestaurant,
	}
	for sector, key := range overrides {
		if parseBoolSetting(values[key], true) {
			cfg.RatePerSector[sector] = rate
			cfg.Enabled = true
		}
	}
	return cfg
}

// parseRate parses a stored rate value; malformed or negative input
// resolves to zero rather than an error.
func parseRate(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil || rate.IsNegative() {
		return decimal.Zero
	}
	return rate
}

func parseBoolSetting(raw string, fallback bool) bool {
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}
