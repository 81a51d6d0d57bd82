package accounting_test

import (
	"errors"
	"testing"

	"github.com/savannah-hms/hotel_backoffice/internal/apperrors"
	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	"github.com/savannah-hms/hotel_backoffice/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertBalanced(t *testing.T) {
	balanced := domain.Transaction{
		ReferenceID: "ORD-001",
		Sector:      domain.SectorRestaurant,
		NetAmount:   dec("100.00"),
		VATAmount:   dec("18.00"),
		GrossAmount: dec("118.00"),
	}
	assert.NoError(t, accounting.AssertBalanced(balanced))

	zeroTax := domain.Transaction{
		ReferenceID: "ORD-002",
		Sector:      domain.SectorBar,
		NetAmount:   dec("10000"),
		VATAmount:   dec("0"),
		GrossAmount: dec("10000"),
	}
	assert.NoError(t, accounting.AssertBalanced(zeroTax))
}

func TestAssertBalanced_OffByOneCent(t *testing.T) {
	txn := domain.Transaction{
		ReferenceID: "BKG-042",
		Sector:      domain.SectorRooms,
		NetAmount:   dec("100.00"),
		VATAmount:   dec("17.99"),
		GrossAmount: dec("118.00"),
	}

	err := accounting.AssertBalanced(txn)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrReconciliation)

	var reconErr *apperrors.ReconciliationError
	require.True(t, errors.As(err, &reconErr))
	assert.Equal(t, "BKG-042", reconErr.ReferenceID)
	assert.Equal(t, string(domain.SectorRooms), reconErr.Sector)
}
