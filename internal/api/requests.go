package api

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkRequest validates an outbound payload before it is sent. The
// server validates again; this just catches obviously broken forms
// without a round trip.
func checkRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

// LoanApplication is the raw input for POST /loans/apply. The computed
// EMI figures are deliberately absent: the server derives its own
// authoritative numbers from these inputs.
type LoanApplication struct {
	ReferralID            string          `json:"referral_id,omitempty" validate:"omitempty,numeric"`
	GuarantorName         string          `json:"guarantor_name" validate:"required"`
	GuarantorPhone        string          `json:"guarantor_phone" validate:"required,min=10,max=13"`
	GuarantorAddress      string          `json:"guarantor_address" validate:"required"`
	GuarantorRelationship string          `json:"guarantor_relationship" validate:"required"`
	PrincipalAmount       decimal.Decimal `json:"principal_amount"`
	PlanID                int64           `json:"plan_id" validate:"required,gt=0"`
	PreferedInstallments  int64           `json:"prefered_installments" validate:"required,gte=1"`
}

// Nominee names who receives a deposit's proceeds.
type Nominee struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required,min=10,max=13"`
	Address      string `json:"address" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
}

// DepositApplication is the raw input for POST /deposits/apply.
type DepositApplication struct {
	ReferralID     string          `json:"ref_id,omitempty" validate:"omitempty,numeric"`
	Amount         decimal.Decimal `json:"amount"`
	Nominee        Nominee         `json:"nominee" validate:"required"`
	PlanID         int64           `json:"plan_id" validate:"required,gt=0"`
	PreferedTenure int64           `json:"prefered_tenure" validate:"required,gte=1"`
}

// EMICollection is one installment collected by an agent.
type EMICollection struct {
	PayDate      string          `json:"pay_date" validate:"required,datetime=2006-01-02"`
	Remark       string          `json:"remark,omitempty"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalFeePaid decimal.Decimal `json:"total_fee_paid"`
}

// WithdrawalRequest asks the server to pay out from the wallet.
type WithdrawalRequest struct {
	WithdrawalAmount decimal.Decimal `json:"withdrawal_amount"`
}
