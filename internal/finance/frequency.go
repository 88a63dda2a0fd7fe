// Package finance implements the loan and deposit terms calculators.
//
// Every function in this package is pure: same inputs always produce
// identical outputs, so the figures shown to a member before submission
// can be reconciled against what the server eventually posts. All money
// math runs on decimal.Decimal and rounds half-up to two places.
package finance

import "fmt"

// RateFrequency is a payment or interest accrual frequency as labeled
// by the plans API ("Monthly", "Weekly", ...).
type RateFrequency string

// Supported frequencies.
const (
	Daily      RateFrequency = "Daily"
	Weekly     RateFrequency = "Weekly"
	Monthly    RateFrequency = "Monthly"
	Quarterly  RateFrequency = "Quarterly"
	HalfYearly RateFrequency = "HalfYearly"
	Yearly     RateFrequency = "Yearly"
)

// periodsPerYear maps each supported frequency to the number of
// periods in a year. Daily assumes a 365-day basis.
var periodsPerYear = map[RateFrequency]int64{
	Daily:      365,
	Weekly:     52,
	Monthly:    12,
	Quarterly:  4,
	HalfYearly: 2,
	Yearly:     1,
}

// UnsupportedFrequencyError reports a frequency label with no known
// periods-per-year mapping. Callers must surface it rather than fall
// back to a default frequency, which would misstate money.
type UnsupportedFrequencyError struct {
	Label string
}

func (e *UnsupportedFrequencyError) Error() string {
	return fmt.Sprintf("unsupported frequency: %q", e.Label)
}

// PeriodsPerYear returns how many periods of the given frequency fit
// in one year (Daily→365, Weekly→52, Monthly→12, Quarterly→4,
// HalfYearly→2, Yearly→1).
func PeriodsPerYear(freq RateFrequency) (int64, error) {
	n, ok := periodsPerYear[freq]
	if !ok {
		return 0, &UnsupportedFrequencyError{Label: string(freq)}
	}
	return n, nil
}

// ParseFrequency converts a label from the plans API into a
// RateFrequency. "Half-Yearly" and "Half Yearly" are accepted as
// spellings of HalfYearly; anything else unknown is an error.
func ParseFrequency(label string) (RateFrequency, error) {
	switch label {
	case "Daily":
		return Daily, nil
	case "Weekly":
		return Weekly, nil
	case "Monthly":
		return Monthly, nil
	case "Quarterly":
		return Quarterly, nil
	case "HalfYearly", "Half-Yearly", "Half Yearly":
		return HalfYearly, nil
	case "Yearly":
		return Yearly, nil
	default:
		return "", &UnsupportedFrequencyError{Label: label}
	}
}
