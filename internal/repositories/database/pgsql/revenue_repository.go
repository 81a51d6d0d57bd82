package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	portsrepo "github.com/savannah-hms/hotel_backoffice/internal/core/ports/repositories"
)

type PgxRevenueRepository struct {
	BaseRepository
}

// newPgxRevenueRepository creates a new repository for raw revenue records.
func newPgxRevenueRepository(pool *pgxpool.Pool) portsrepo.RevenueRepository {
	return &PgxRevenueRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RevenueRepository = (*PgxRevenueRepository)(nil)

// FindRoomRevenue returns bookings created inside the period. Revenue is
// recognized at booking-creation time for the active status set, so the
// filter is on created_at, not the check-out date.
func (r *PgxRevenueRepository) FindRoomRevenue(ctx context.Context, businessID string, period domain.Period) ([]domain.RevenueRecord, error) {
	query := `
		SELECT booking_id, created_at, total_amount, payment_mode, booking_number
		FROM bookings
		WHERE business_id = $1
			AND status = ANY($2)
			AND created_at >= $3
			AND created_at <= $4
		ORDER BY created_at, booking_id
	`

	statuses := make([]string, len(domain.ActiveBookingStatuses))
	for i, status := range domain.ActiveBookingStatuses {
		statuses[i] = string(status)
	}

	rows, err := r.Pool.Query(ctx, query, businessID, statuses, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query room revenue: %w", err)
	}
	defer rows.Close()

	return scanRevenueRecords(rows)
}

// FindBarRevenue returns bar orders placed inside the period.
func (r *PgxRevenueRepository) FindBarRevenue(ctx context.Context, businessID string, period domain.Period) ([]domain.RevenueRecord, error) {
	return r.findOrderRevenue(ctx, businessID, "bar_orders", period)
}

// FindRestaurantRevenue returns restaurant orders placed inside the period.
func (r *PgxRevenueRepository) FindRestaurantRevenue(ctx context.Context, businessID string, period domain.Period) ([]domain.RevenueRecord, error) {
	return r.findOrderRevenue(ctx, businessID, "restaurant_orders", period)
}

// findOrderRevenue is shared by the bar and restaurant finders; the two
// order tables have the same shape.
func (r *PgxRevenueRepository) findOrderRevenue(ctx context.Context, businessID, table string, period domain.Period) ([]domain.RevenueRecord, error) {
	query := fmt.Sprintf(`
		SELECT order_id, created_at, total_amount, payment_mode, order_number
		FROM %s
		WHERE business_id = $1
			AND created_at >= $2
			AND created_at <= $3
		ORDER BY created_at, order_id
	`, table)

	rows, err := r.Pool.Query(ctx, query, businessID, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s revenue: %w", table, err)
	}
	defer rows.Close()

	return scanRevenueRecords(rows)
}

// scanRevenueRecords scans rows shaped (id, created_at, gross, payment_mode, reference).
func scanRevenueRecords(rows pgx.Rows) ([]domain.RevenueRecord, error) {
	var records []domain.RevenueRecord
	for rows.Next() {
		var record domain.RevenueRecord
		var paymentMode, referenceNumber *string
		if err := rows.Scan(&record.ID, &record.CreatedAt, &record.GrossAmount, &paymentMode, &referenceNumber); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		if paymentMode != nil {
			record.PaymentMode = *paymentMode
		}
		if referenceNumber != nil {
			record.ReferenceNumber = *referenceNumber
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating revenue rows: %w", err)
	}

	if records == nil {
		// Return empty slice instead of nil
		return []domain.RevenueRecord{}, nil
	}
	return records, nil
}
