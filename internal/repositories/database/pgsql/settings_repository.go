package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	portsrepo "github.com/savannah-hms/hotel_backoffice/internal/core/ports/repositories"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for business settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// FindSettings fetches all requested settings rows for a business in one query.
func (r *PgxSettingsRepository) FindSettings(ctx context.Context, businessID string, keys []string) ([]domain.Setting, error) {
	query := `
		SELECT business_id, key, value
		FROM business_settings
		WHERE business_id = $1 AND key = ANY($2)
	`

	rows, err := r.Pool.Query(ctx, query, businessID, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings for business %s: %w", businessID, err)
	}
	defer rows.Close()

	var settings []domain.Setting
	for rows.Next() {
		var setting domain.Setting
		if err := rows.Scan(&setting.BusinessID, &setting.Key, &setting.Value); err != nil {
			return nil, fmt.Errorf("failed to scan settings row: %w", err)
		}
		settings = append(settings, setting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings rows: %w", err)
	}

	if settings == nil {
		// Return empty slice instead of nil
		return []domain.Setting{}, nil
	}
	return settings, nil
}
