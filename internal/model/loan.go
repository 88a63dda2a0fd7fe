package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a member's loan record as persisted by the server. EMIAmount
// and TotalPayable are the authoritative server-computed figures; the
// client's own calculator only previews them before application.
type Loan struct {
	CreatedAt            time.Time       `json:"created_at"`
	LoanStatus           string          `json:"loan_status"`
	InterestFrequency    string          `json:"interest_frequency"`
	EMIFrequency         string          `json:"emi_frequency"`
	Amount               decimal.Decimal `json:"amount"`
	InterestRate         decimal.Decimal `json:"interest_rate"`
	EMIAmount            decimal.Decimal `json:"emi_amount"`
	TotalPayable         decimal.Decimal `json:"total_payable"`
	TotalPaid            decimal.Decimal `json:"total_paid"`
	User                 *UserRef        `json:"user,omitempty"`
	ID                   int64           `json:"id"`
	PreferedInstallments int64           `json:"prefered_installments"`
	OverrodeInstallments int64           `json:"overrode_installments"`
}

// Installments returns the installment count in force: the server's
// override when present, otherwise the member's preference.
func (l *Loan) Installments() int64 {
	if l.OverrodeInstallments > 0 {
		return l.OverrodeInstallments
	}
	return l.PreferedInstallments
}

// Repayment is one collected installment on a loan or deposit.
type Repayment struct {
	PayDate     time.Time       `json:"pay_date"`
	Status      string          `json:"status"`
	CollectedBy string          `json:"collected_by"`
	Remark      string          `json:"remark"`
	Amount      decimal.Decimal `json:"amount"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	LateFee     decimal.Decimal `json:"late_fee"`
	Collector   *UserRef        `json:"collector,omitempty"`
	ID          int64           `json:"id"`
}

// DueInfo is the server's due computation for a loan or deposit. The
// client displays these figures verbatim and never recomputes them.
type DueInfo struct {
	TotalDue           decimal.Decimal `json:"totalDue"`
	TotalOverdue       decimal.Decimal `json:"totalOverdue"`
	TotalPartialRemain decimal.Decimal `json:"totalPartialRemain"`
	TotalLateFee       decimal.Decimal `json:"totalLateFee"`
}

// Assignment is a loan or deposit assigned to an agent for collection.
type Assignment struct {
	Category  string          `json:"category"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	TotalPaid decimal.Decimal `json:"total_paid"`
	User      *UserRef        `json:"user,omitempty"`
	ID        int64           `json:"id"`
}
