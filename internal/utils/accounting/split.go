package accounting

import (
	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// SplitGross decomposes an inclusive-tax gross amount into net and tax:
// net = gross / (1 + rate), tax = gross - net. With tax disabled or a
// non-positive rate the full amount is net. Negative gross is treated as
// zero rather than rejected, since corrupt upstream data must not break a
// report. No rounding happens here; values are rounded when they enter a
// Transaction or a displayed total.
func SplitGross(gross decimal.Decimal, enabled bool, rate decimal.Decimal) domain.MoneySplit {
	if gross.IsNegative() {
		gross = decimal.Zero
	}

	if !enabled || rate.LessThanOrEqual(decimal.Zero) {
		return domain.MoneySplit{Net: gross, Tax: decimal.Zero, Gross: gross}
	}

	net := gross.Div(one.Add(rate))
	return domain.MoneySplit{
		Net:   net,
		Tax:   gross.Sub(net),
		Gross: gross,
	}
}

// RoundMoney rounds a monetary value to 2 decimal places, half away from
// zero. This is the only rounding applied anywhere in the engine.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// RoundSplit rounds every leg of a split for placement in a Transaction.
// Tax is recomputed as gross - net after rounding so the legs still sum
// exactly to the rounded gross.
func RoundSplit(split domain.MoneySplit) domain.MoneySplit {
	gross := RoundMoney(split.Gross)
	net := RoundMoney(split.Net)
	return domain.MoneySplit{
		Net:   net,
		Tax:   gross.Sub(net),
		Gross: gross,
	}
}
