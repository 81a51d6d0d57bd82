package accounting

import (
	"github.com/savannah-hms/hotel_backoffice/internal/apperrors"
	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// toCents converts a monetary amount to integer cents.
func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// AssertBalanced verifies the cent-exact reconciliation invariant
// net + tax == gross for a single transaction. A violation means a data or
// rounding bug, so it is returned as a hard ReconciliationError; callers
// producing compliance exports must abort on it rather than emit an
// unbalanced ledger row.
func AssertBalanced(txn domain.Transaction) error {
	netCents := toCents(txn.NetAmount)
	taxCents := toCents(txn.VATAmount)
	grossCents := toCents(txn.GrossAmount)

	if netCents+taxCents != grossCents {
		return &apperrors.ReconciliationError{
			ReferenceID: txn.ReferenceID,
			Sector:      string(txn.Sector),
		}
	}
	return nil
}
