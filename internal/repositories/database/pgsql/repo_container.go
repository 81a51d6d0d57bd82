package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/savannah-hms/hotel_backoffice/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	settingsRepo := newPgxSettingsRepository(dbPool)
	revenueRepo := newPgxRevenueRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SettingsRepo: settingsRepo,
		RevenueRepo:  revenueRepo,
	}
}
