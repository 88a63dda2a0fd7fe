package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportEntry is one collected repayment in the agent's report.
type ReportEntry struct {
	PayDate     time.Time       `json:"pay_date"`
	PlanType    string          `json:"plan_type"`
	Status      string          `json:"status"`
	CollectedBy string          `json:"collected_by"`
	Amount      decimal.Decimal `json:"amount"`
	LateFee     decimal.Decimal `json:"late_fee"`
	User        *UserRef        `json:"user,omitempty"`
	ID          int64           `json:"id"`
	RecordID    int64           `json:"record_id"`
}

// DashData is the landing-screen summary for the current user.
type DashData struct {
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	ActiveLoans   int64           `json:"active_loans"`
	ActiveFDs     int64           `json:"active_fds"`
	ActiveRDs     int64           `json:"active_rds"`
	TotalDue      decimal.Decimal `json:"total_due"`
}
