package repositories

import (
	"context"

	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
)

// RevenueRepository defines read access to raw revenue records, one finder
// per sector. Every finder filters by business and inclusive date range and
// returns amounts as exact decimals.
type RevenueRepository interface {
	// FindRoomRevenue returns room bookings created inside the period whose
	// status is in the active set (CONFIRMED, CHECKED_IN, CHECKED_OUT).
	FindRoomRevenue(ctx context.Context, businessID string, period domain.Period) ([]domain.RevenueRecord, error)

	// FindBarRevenue returns bar orders placed inside the period.
	FindBarRevenue(ctx context.Context, businessID string, period domain.Period) ([]domain.RevenueRecord, error)

	// FindRestaurantRevenue returns restaurant orders placed inside the period.
	FindRestaurantRevenue(ctx context.Context, businessID string, period domain.Period) ([]domain.RevenueRecord, error)
}
