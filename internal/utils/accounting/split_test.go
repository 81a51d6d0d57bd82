package accounting_test

import (
	"testing"

	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	"github.com/savannah-hms/hotel_backoffice/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSplitGross(t *testing.T) {
	tests := []struct {
		name    string
		gross   decimal.Decimal
		enabled bool
		rate    decimal.Decimal
		wantNet decimal.Decimal
		wantTax decimal.Decimal
	}{
		{
			name:    "tax disabled passes gross through",
			gross:   dec("10000"),
			enabled: false,
			rate:    dec("0.18"),
			wantNet: dec("10000"),
			wantTax: dec("0"),
		},
		{
			name:    "zero rate passes gross through",
			gross:   dec("500"),
			enabled: true,
			rate:    dec("0"),
			wantNet: dec("500"),
			wantTax: dec("0"),
		},
		{
			name:    "18 percent inclusive",
			gross:   dec("118000"),
			enabled: true,
			rate:    dec("0.18"),
			wantNet: dec("100000"),
			wantTax: dec("18000"),
		},
		{
			name:    "combined 18 percent rate on bar sale",
			gross:   dec("11800"),
			enabled: true,
			rate:    dec("0.18"),
			wantNet: dec("10000"),
			wantTax: dec("1800"),
		},
		{
			name:    "negative gross clamps to zero",
			gross:   dec("-42.50"),
			enabled: true,
			rate:    dec("0.18"),
			wantNet: dec("0"),
			wantTax: dec("0"),
		},
		{
			name:    "negative rate treated as no tax",
			gross:   dec("100"),
			enabled: true,
			rate:    dec("-0.05"),
			wantNet: dec("100"),
			wantTax: dec("0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := accounting.SplitGross(tt.gross, tt.enabled, tt.rate)
			assert.True(t, tt.wantNet.Equal(split.Net), "net: want %s got %s", tt.wantNet, split.Net)
			assert.True(t, tt.wantTax.Equal(split.Tax), "tax: want %s got %s", tt.wantTax, split.Tax)
			assert.True(t, split.Net.Add(split.Tax).Equal(split.Gross), "net + tax must reproduce gross")
		})
	}
}

func TestSplitGross_NetTimesRateReproducesGross(t *testing.T) {
	// net * (1 + rate) == gross for a spread of rates and amounts.
	rates := []string{"0.05", "0.13", "0.18", "0.25", "1"}
	amounts := []string{"0.01", "1", "99.99", "118000", "123456.78"}

	one := decimal.NewFromInt(1)
	for _, r := range rates {
		for _, a := range amounts {
			rate := dec(r)
			gross := dec(a)
			split := accounting.SplitGross(gross, true, rate)
			back := split.Net.Mul(one.Add(rate))
			diff := back.Sub(gross).Abs()
			assert.True(t, diff.LessThan(dec("0.000001")),
				"rate %s gross %s: net*(1+rate)=%s", r, a, back)
		}
	}
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"99.995", "100"},
		{"99.994", "99.99"},
		{"0.005", "0.01"},
		{"-0.005", "-0.01"}, // half away from zero
		{"10", "10"},
	}
	for _, tt := range tests {
		got := accounting.RoundMoney(dec(tt.in))
		assert.True(t, dec(tt.want).Equal(got), "round(%s): want %s got %s", tt.in, tt.want, got)
	}
}

func TestRoundSplit_PreservesReconciliation(t *testing.T) {
	// A gross of 99.995 rounds up to 100.00 and the legs still balance.
	split := accounting.SplitGross(dec("99.995"), true, dec("0.18"))
	rounded := accounting.RoundSplit(split)

	require.True(t, dec("100").Equal(rounded.Gross), "gross rounds to 100.00, got %s", rounded.Gross)
	assert.True(t, rounded.Net.Add(rounded.Tax).Equal(rounded.Gross))

	txn := domain.Transaction{
		ReferenceID: "R-1",
		Sector:      domain.SectorBar,
		NetAmount:   rounded.Net,
		VATAmount:   rounded.Tax,
		GrossAmount: rounded.Gross,
	}
	assert.NoError(t, accounting.AssertBalanced(txn))
}
