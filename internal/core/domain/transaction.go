package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownReference is used when a raw record carries no usable identifier.
const UnknownReference = "UNKNOWN"

// MoneySplit is a gross cash amount decomposed under the inclusive-tax
// model. Net + Tax always reproduces Gross.
type MoneySplit struct {
	Net   decimal.Decimal `json:"net"`
	Tax   decimal.Decimal `json:"tax"`
	Gross decimal.Decimal `json:"gross"`
}

// Transaction is a single revenue event ready for reporting. Transactions
// are built on demand per report request from raw sector records, never
// persisted, and immutable once produced.
type Transaction struct {
	Date        time.Time       `json:"date"`
	ReferenceID string          `json:"referenceID"` // order/booking identifier
	Sector      Sector          `json:"sector"`
	NetAmount   decimal.Decimal `json:"netAmount"`
	VATAmount   decimal.Decimal `json:"vatAmount"`
	GrossAmount decimal.Decimal `json:"grossAmount"`
	PaymentMode string          `json:"paymentMode"`
}
