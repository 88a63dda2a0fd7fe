package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// InvalidDepositTermsError reports a deposit input that fails
// validation, naming the offending field.
type InvalidDepositTermsError struct {
	Field  string
	Reason string
}

func (e *InvalidDepositTermsError) Error() string {
	return fmt.Sprintf("invalid deposit terms: %s %s", e.Field, e.Reason)
}

// DepositTerms are the inputs to the maturity projection: what the
// member has paid in so far, the plan's nominal annual rate, and the
// deposit's tenure in months.
type DepositTerms struct {
	TotalPaid         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TenureMonths      int64
}

// DepositReturn is the projected maturity value of a deposit. It is a
// display-only estimate; the authoritative accrual runs server-side.
type DepositReturn struct {
	TotalReturn decimal.Decimal
}

// CalculateDepositReturn projects the maturity value of a recurring or
// fixed deposit using simple annualized interest:
//
//	totalReturn = totalPaid + totalPaid * rate/100 * tenureMonths/12
//
// The interest component is rounded half-up to two places, so a zero
// rate returns TotalPaid unchanged.
func CalculateDepositReturn(terms DepositTerms) (DepositReturn, error) {
	if terms.TotalPaid.IsNegative() {
		return DepositReturn{}, &InvalidDepositTermsError{Field: "total_paid", Reason: "must not be negative"}
	}
	if terms.AnnualRatePercent.IsNegative() {
		return DepositReturn{}, &InvalidDepositTermsError{Field: "annual_rate_percent", Reason: "must not be negative"}
	}
	if terms.TenureMonths < 1 {
		return DepositReturn{}, &InvalidDepositTermsError{Field: "tenure_months", Reason: "must be at least 1"}
	}

	interest := terms.TotalPaid.
		Mul(terms.AnnualRatePercent).
		Mul(decimal.NewFromInt(terms.TenureMonths)).
		Div(hundred.Mul(twelve)).
		Round(2)

	return DepositReturn{TotalReturn: terms.TotalPaid.Add(interest)}, nil
}
