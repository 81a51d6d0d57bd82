package domain

// Setting is one business-settings row: a string value stored under a key.
type Setting struct {
	BusinessID string `json:"businessID"`
	Key        string `json:"key"`
	Value      string `json:"value"`
}

// Settings keys recognized by the tax policy resolver. These names are the
// configuration surface a business administrator edits and must stay stable.
const (
	SettingTaxRules = "tax_rules" // JSON-encoded array of TaxRule

	// Legacy single-rate scheme, used only when no rule in tax_rules is enabled.
	SettingTaxEnabled         = "tax_enabled"
	SettingTaxRate            = "tax_rate"
	SettingTaxApplyRooms      = "tax_apply_rooms"
	SettingTaxApplyBar        = "tax_apply_bar"
	SettingTaxApplyRestaurant = "tax_apply_restaurant"
)

// TaxSettingKeys is the batch of keys the resolver fetches in one read.
var TaxSettingKeys = []string{
	SettingTaxRules,
	SettingTaxEnabled,
	SettingTaxRate,
	SettingTaxApplyRooms,
	SettingTaxApplyBar,
	SettingTaxApplyRestaurant,
}
