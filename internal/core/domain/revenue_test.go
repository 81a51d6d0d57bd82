package domain_test

import (
	"testing"
	"time"

	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPeriod_ContainsIsInclusive(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	period := domain.Period{From: from, To: to}

	assert.True(t, period.Contains(from))
	assert.True(t, period.Contains(to))
	assert.True(t, period.Contains(from.AddDate(0, 0, 15)))
	assert.False(t, period.Contains(from.Add(-time.Second)))
	assert.False(t, period.Contains(to.Add(time.Second)))
}

func TestToday_SpansTheCurrentDay(t *testing.T) {
	period := domain.Today()
	now := time.Now()

	assert.True(t, period.Contains(now))
	assert.Equal(t, 0, period.From.Hour())
	assert.True(t, period.To.After(period.From))
}
