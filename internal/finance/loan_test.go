package finance

import (
	"errors"
	"testing"

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

func TestCalculateLoanSchedule(t *testing.T) {
	tests := []struct {
		name              string
		terms             LoanTerms
		wantEMI           string
		wantTotalInterest string
		wantTotalPayable  string
	}{
		{
			name: "twelve monthly installments at 12 percent",
			terms: LoanTerms{
				Principal:         dec("10000"),
				AnnualRatePercent: dec("12"),
				InstallmentCount:  12,
				InterestFrequency: Yearly,
				EMIFrequency:      Monthly,
			},
			wantEMI:           "933.33",
			wantTotalInterest: "1200",
			wantTotalPayable:  "11200",
		},
		{
			name: "zero rate amortizes principal only",
			terms: LoanTerms{
				Principal:         dec("50000"),
				AnnualRatePercent: dec("0"),
				InstallmentCount:  24,
				InterestFrequency: Yearly,
				EMIFrequency:      Monthly,
			},
			wantEMI:           "2083.33",
			wantTotalInterest: "0",
			wantTotalPayable:  "50000",
		},
		{
			name: "single installment equals total payable",
			terms: LoanTerms{
				Principal:         dec("1000"),
				AnnualRatePercent: dec("10"),
				InstallmentCount:  1,
				InterestFrequency: Monthly,
				EMIFrequency:      Monthly,
			},
			wantEMI:           "1008.33",
			wantTotalInterest: "8.33",
			wantTotalPayable:  "1008.33",
		},
		{
			name: "weekly repayment over a full year",
			terms: LoanTerms{
				Principal:         dec("5200"),
				AnnualRatePercent: dec("10"),
				InstallmentCount:  52,
				InterestFrequency: Yearly,
				EMIFrequency:      Weekly,
			},
			wantEMI:           "110",
			wantTotalInterest: "520",
			wantTotalPayable:  "5720",
		},
		{
			name: "fractional rate rounds half up",
			terms: LoanTerms{
				Principal:         dec("9999"),
				AnnualRatePercent: dec("12.5"),
				InstallmentCount:  6,
				InterestFrequency: Yearly,
				EMIFrequency:      Monthly,
			},
			// 9999 * 0.125 * 6/12 = 624.9375 -> 624.94
			wantEMI:           "1770.66",
			wantTotalInterest: "624.94",
			wantTotalPayable:  "10623.94",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateLoanSchedule(tt.terms)
			require.NoError(t, err)
			assert.True(t, got.EMIAmount.Equal(dec(tt.wantEMI)),
				"emi = %s, want %s", got.EMIAmount, tt.wantEMI)
			assert.True(t, got.TotalInterest.Equal(dec(tt.wantTotalInterest)),
				"interest = %s, want %s", got.TotalInterest, tt.wantTotalInterest)
			assert.True(t, got.TotalPayable.Equal(dec(tt.wantTotalPayable)),
				"payable = %s, want %s", got.TotalPayable, tt.wantTotalPayable)
		})
	}
}

func TestCalculateLoanSchedule_Invariants(t *testing.T) {
	principals := []string{"100", "999.99", "10000", "250000"}
	rates := []string{"0", "8", "12.5", "24"}
	counts := []int64{1, 3, 12, 52, 100}

	for _, p := range principals {
		for _, r := range rates {
			for _, n := range counts {
				terms := LoanTerms{
					Principal:         dec(p),
					AnnualRatePercent: dec(r),
					InstallmentCount:  n,
					InterestFrequency: Yearly,
					EMIFrequency:      Monthly,
				}
				got, err := CalculateLoanSchedule(terms)
				require.NoError(t, err)

				// totalPayable = principal + totalInterest, exactly.
				assert.True(t, got.TotalPayable.Equal(terms.Principal.Add(got.TotalInterest)))
				assert.True(t, got.TotalPayable.GreaterThanOrEqual(terms.Principal))

				// emi * n reconstructs totalPayable within one cent
				// per installment.
				diff := got.EMIAmount.Mul(decimal.NewFromInt(n)).Sub(got.TotalPayable).Abs()
				tolerance := decimal.NewFromInt(n).Mul(dec("0.01"))
				assert.True(t, diff.LessThanOrEqual(tolerance),
					"p=%s r=%s n=%d: |emi*n - payable| = %s", p, r, n, diff)

				if dec(r).IsZero() {
					assert.True(t, got.TotalInterest.IsZero())
					assert.True(t, got.TotalPayable.Equal(terms.Principal))
				}
				if n == 1 {
					assert.True(t, got.EMIAmount.Equal(got.TotalPayable.Round(2)))
				}
			}
		}
	}
}

func TestCalculateLoanSchedule_Deterministic(t *testing.T) {
	terms := LoanTerms{
		Principal:         dec("12345.67"),
		AnnualRatePercent: dec("11.75"),
		InstallmentCount:  36,
		InterestFrequency: Yearly,
		EMIFrequency:      Monthly,
	}

	first, err := CalculateLoanSchedule(terms)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := CalculateLoanSchedule(terms)
		require.NoError(t, err)
		assert.True(t, first.EMIAmount.Equal(again.EMIAmount))
		assert.True(t, first.TotalInterest.Equal(again.TotalInterest))
		assert.True(t, first.TotalPayable.Equal(again.TotalPayable))
	}
}

func TestCalculateLoanSchedule_Validation(t *testing.T) {
	valid := LoanTerms{
		Principal:         dec("1000"),
		AnnualRatePercent: dec("10"),
		InstallmentCount:  12,
		InterestFrequency: Yearly,
		EMIFrequency:      Monthly,
	}

	tests := []struct {
		mutate    func(*LoanTerms)
		name      string
		wantField string
	}{
		{
			name:      "zero principal",
			mutate:    func(lt *LoanTerms) { lt.Principal = dec("0") },
			wantField: "principal",
		},
		{
			name:      "negative principal",
			mutate:    func(lt *LoanTerms) { lt.Principal = dec("-5") },
			wantField: "principal",
		},
		{
			name:      "negative rate",
			mutate:    func(lt *LoanTerms) { lt.AnnualRatePercent = dec("-0.01") },
			wantField: "annual_rate_percent",
		},
		{
			name:      "zero installments",
			mutate:    func(lt *LoanTerms) { lt.InstallmentCount = 0 },
			wantField: "installment_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := valid
			tt.mutate(&terms)

			_, err := CalculateLoanSchedule(terms)
			var termsErr *InvalidLoanTermsError
			require.True(t, errors.As(err, &termsErr))
			assert.Equal(t, tt.wantField, termsErr.Field)
		})
	}

	t.Run("unknown emi frequency", func(t *testing.T) {
		terms := valid
		terms.EMIFrequency = RateFrequency("Fortnightly")

		_, err := CalculateLoanSchedule(terms)
		var freqErr *UnsupportedFrequencyError
		require.True(t, errors.As(err, &freqErr))
	})

	t.Run("unknown interest frequency", func(t *testing.T) {
		terms := valid
		terms.InterestFrequency = RateFrequency("")

		_, err := CalculateLoanSchedule(terms)
		var freqErr *UnsupportedFrequencyError
		require.True(t, errors.As(err, &freqErr))
	})
}
