package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deposit is a member's FD or RD record as persisted by the server.
type Deposit struct {
	CreatedAt               time.Time       `json:"created_at"`
	MaturityDate            *time.Time      `json:"maturity_date,omitempty"`
	Category                string          `json:"category"`
	DepositStatus           string          `json:"deposit_status"`
	InterestCreditFrequency string          `json:"interest_credit_frequency"`
	PaymentFrequency        string          `json:"payment_frequency"`
	Amount                  decimal.Decimal `json:"amount"`
	InterestRate            decimal.Decimal `json:"interest_rate"`
	TotalPaid               decimal.Decimal `json:"total_paid"`
	User                    *UserRef        `json:"user,omitempty"`
	ID                      int64           `json:"id"`
	PreferedTenure          int64           `json:"prefered_tenure"`
}
