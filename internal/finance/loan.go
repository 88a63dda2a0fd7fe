package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// InvalidLoanTermsError reports a loan input that fails validation.
// The offending field is named so the UI can attach the message to the
// right control; values are never clamped into range.
type InvalidLoanTermsError struct {
	Field  string
	Reason string
}

func (e *InvalidLoanTermsError) Error() string {
	return fmt.Sprintf("invalid loan terms: %s %s", e.Field, e.Reason)
}

// LoanTerms are the inputs to the EMI calculator. Amounts are whole
// currency units with a 2-decimal fraction; AnnualRatePercent is the
// nominal annual rate quoted as a plain number (12.5 means 12.5%).
type LoanTerms struct {
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	InstallmentCount  int64
	InterestFrequency RateFrequency
	EMIFrequency      RateFrequency
}

// LoanSchedule summarizes a flat-rate repayment schedule. TotalPayable
// is always Principal + TotalInterest; EMIAmount times the installment
// count may differ from TotalPayable by up to one cent per installment
// due to rounding, and the server absorbs the residual into the final
// installment when it posts the ledger.
type LoanSchedule struct {
	EMIAmount     decimal.Decimal
	TotalInterest decimal.Decimal
	TotalPayable  decimal.Decimal
}

// CalculateLoanSchedule computes the equal installment amount and
// totals for a loan under flat-rate (simple nominal) interest.
//
// Interest for the whole tenor is
//
//	principal * rate/100 * installments/periodsPerYear(emiFrequency)
//
// i.e. the quoted annual rate applied to the original principal for
// the fraction of a year the schedule spans, not reducing-balance
// amortization. This matches how the lending side prices these plans.
func CalculateLoanSchedule(terms LoanTerms) (LoanSchedule, error) {
	if !terms.Principal.IsPositive() {
		return LoanSchedule{}, &InvalidLoanTermsError{Field: "principal", Reason: "must be positive"}
	}
	if terms.AnnualRatePercent.IsNegative() {
		return LoanSchedule{}, &InvalidLoanTermsError{Field: "annual_rate_percent", Reason: "must not be negative"}
	}
	if terms.InstallmentCount < 1 {
		return LoanSchedule{}, &InvalidLoanTermsError{Field: "installment_count", Reason: "must be at least 1"}
	}
	if _, err := PeriodsPerYear(terms.InterestFrequency); err != nil {
		return LoanSchedule{}, err
	}
	emiPeriods, err := PeriodsPerYear(terms.EMIFrequency)
	if err != nil {
		return LoanSchedule{}, err
	}

	installments := decimal.NewFromInt(terms.InstallmentCount)

	// Single division keeps the intermediate exact until the final
	// round: P * rate * n / (100 * periods).
	totalInterest := terms.Principal.
		Mul(terms.AnnualRatePercent).
		Mul(installments).
		Div(hundred.Mul(decimal.NewFromInt(emiPeriods))).
		Round(2)

	totalPayable := terms.Principal.Add(totalInterest)
	emiAmount := totalPayable.Div(installments).Round(2)

	return LoanSchedule{
		EMIAmount:     emiAmount,
		TotalInterest: totalInterest,
		TotalPayable:  totalPayable,
	}, nil
}
