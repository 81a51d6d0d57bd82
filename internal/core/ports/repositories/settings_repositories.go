package repositories

import (
	"context"

	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
)

// SettingsRepository defines read access to the business-settings store.
type SettingsRepository interface {
	// FindSettings fetches the settings rows stored under the given keys for
	// one business in a single batch. Keys with no stored value are simply
	// absent from the result.
	FindSettings(ctx context.Context, businessID string, keys []string) ([]domain.Setting, error)
}
