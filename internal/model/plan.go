// Package model holds the wire shapes exchanged with the member
// services API. These are transient values: decoded straight from a
// response, displayed, and dropped. The server owns all persistent
// state; nothing here is stored locally.
package model

import "github.com/shopspring/decimal"

// LoanPlan is a lending product a member can apply against. Rates and
// frequencies arrive as the server labels them; the calculator parses
// frequency labels only at calculation time so an unknown label fails
// loudly instead of defaulting.
type LoanPlan struct {
	PlanName            string          `json:"plan_name"`
	InterestFrequency   string          `json:"interest_frequency"`
	AllowedEMIFrequency string          `json:"allowed_emi_frequency"`
	InterestRate        decimal.Decimal `json:"interest_rate"`
	MinAmount           decimal.Decimal `json:"min_amount"`
	MaxAmount           decimal.Decimal `json:"max_amount"`
	ID                  int64           `json:"id"`
	MaxInstallments     int64           `json:"max_installments"`
	AllowPrematureClose bool            `json:"allow_premature_closing"`
}

// DepositPlan is an FD or RD product.
type DepositPlan struct {
	PlanName                string          `json:"plan_name"`
	Category                string          `json:"category"`
	InterestCreditFrequency string          `json:"allowed_interest_credit_frequency"`
	InterestRate            decimal.Decimal `json:"interest_rate"`
	MinAmount               decimal.Decimal `json:"min_amount"`
	MaxAmount               decimal.Decimal `json:"max_amount"`
	ID                      int64           `json:"id"`
	AllowPrematureWithdraw  bool            `json:"allow_premature_withdrawal"`
}
