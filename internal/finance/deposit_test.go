package finance

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDepositReturn(t *testing.T) {
	tests := []struct {
		name  string
		terms DepositTerms
		want  string
	}{
		{
			name: "one year at 8 percent",
			terms: DepositTerms{
				TotalPaid:         dec("5000"),
				AnnualRatePercent: dec("8"),
				TenureMonths:      12,
			},
			want: "5400",
		},
		{
			name: "zero rate returns paid amount exactly",
			terms: DepositTerms{
				TotalPaid:         dec("12345.67"),
				AnnualRatePercent: dec("0"),
				TenureMonths:      60,
			},
			want: "12345.67",
		},
		{
			name: "zero paid stays zero",
			terms: DepositTerms{
				TotalPaid:         dec("0"),
				AnnualRatePercent: dec("9.5"),
				TenureMonths:      24,
			},
			want: "0",
		},
		{
			name: "partial year rounds half up",
			terms: DepositTerms{
				TotalPaid:         dec("10000"),
				AnnualRatePercent: dec("7.25"),
				TenureMonths:      7,
			},
			// 10000 * 0.0725 * 7/12 = 422.9166.. -> 422.92
			want: "10422.92",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateDepositReturn(tt.terms)
			require.NoError(t, err)
			assert.True(t, got.TotalReturn.Equal(dec(tt.want)),
				"totalReturn = %s, want %s", got.TotalReturn, tt.want)
		})
	}
}

func TestCalculateDepositReturn_Monotonic(t *testing.T) {
	paid := dec("8000")

	// Non-decreasing in tenure with the rate held fixed.
	prev := decimal.Zero
	for months := int64(1); months <= 48; months++ {
		got, err := CalculateDepositReturn(DepositTerms{
			TotalPaid:         paid,
			AnnualRatePercent: dec("6.5"),
			TenureMonths:      months,
		})
		require.NoError(t, err)
		assert.True(t, got.TotalReturn.GreaterThanOrEqual(prev),
			"return decreased at %d months", months)
		assert.True(t, got.TotalReturn.GreaterThanOrEqual(paid))
		prev = got.TotalReturn
	}

	// Non-decreasing in rate with the tenure held fixed.
	prev = decimal.Zero
	for _, rate := range []string{"0", "1", "2.5", "6", "9.75", "15"} {
		got, err := CalculateDepositReturn(DepositTerms{
			TotalPaid:         paid,
			AnnualRatePercent: dec(rate),
			TenureMonths:      12,
		})
		require.NoError(t, err)
		assert.True(t, got.TotalReturn.GreaterThanOrEqual(prev),
			"return decreased at rate %s", rate)
		prev = got.TotalReturn
	}
}

func TestCalculateDepositReturn_Validation(t *testing.T) {
	tests := []struct {
		name      string
		terms     DepositTerms
		wantField string
	}{
		{
			name: "negative total paid",
			terms: DepositTerms{
				TotalPaid:         dec("-1"),
				AnnualRatePercent: dec("8"),
				TenureMonths:      12,
			},
			wantField: "total_paid",
		},
		{
			name: "negative rate",
			terms: DepositTerms{
				TotalPaid:         dec("1000"),
				AnnualRatePercent: dec("-8"),
				TenureMonths:      12,
			},
			wantField: "annual_rate_percent",
		},
		{
			name: "zero tenure",
			terms: DepositTerms{
				TotalPaid:         dec("1000"),
				AnnualRatePercent: dec("8"),
				TenureMonths:      0,
			},
			wantField: "tenure_months",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateDepositReturn(tt.terms)
			var termsErr *InvalidDepositTermsError
			require.True(t, errors.As(err, &termsErr))
			assert.Equal(t, tt.wantField, termsErr.Field)
		})
	}
}
