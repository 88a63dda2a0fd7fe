package api

import (
	"context"
	"fmt"

	"github.com/himalayanmicrofin/hmfin/internal/model"
)

// ApplyForLoan submits a loan application. Only raw inputs are sent;
// the server computes the authoritative EMI and payable figures.
func (c *Client) ApplyForLoan(ctx context.Context, app LoanApplication) (*model.Loan, error) {
	if !app.PrincipalAmount.IsPositive() {
		return nil, fmt.Errorf("invalid request: principal_amount must be positive")
	}
	if err := checkRequest(app); err != nil {
		return nil, err
	}

	var resp struct {
		Loan model.Loan `json:"loan"`
	}
	if err := c.post(ctx, "/loans/apply", app, &resp); err != nil {
		return nil, err
	}
	return &resp.Loan, nil
}

// Loans lists the member's loans.
func (c *Client) Loans(ctx context.Context, skip, limit int) ([]model.Loan, error) {
	var resp struct {
		Loans []model.Loan `json:"loans"`
	}
	if err := c.get(ctx, "/loans", pageQuery(skip, limit), &resp); err != nil {
		return nil, err
	}
	return resp.Loans, nil
}

// LoanDetails fetches one loan.
func (c *Client) LoanDetails(ctx context.Context, id int64) (*model.Loan, error) {
	var resp struct {
		Loan model.Loan `json:"loan"`
	}
	if err := c.get(ctx, fmt.Sprintf("/loans/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Loan, nil
}

// LoanRepayments lists collected installments for a loan.
func (c *Client) LoanRepayments(ctx context.Context, id int64, skip, limit int) ([]model.Repayment, error) {
	var resp struct {
		Repayments []model.Repayment `json:"repayments"`
	}
	if err := c.get(ctx, fmt.Sprintf("/loans/%d/repayments", id), pageQuery(skip, limit), &resp); err != nil {
		return nil, err
	}
	return resp.Repayments, nil
}

// LoanDue fetches the server's due computation for a loan. The figures
// are displayed verbatim, never recomputed client-side.
func (c *Client) LoanDue(ctx context.Context, id int64) (*model.DueInfo, error) {
	var due model.DueInfo
	if err := c.get(ctx, fmt.Sprintf("/loans/%d/due", id), nil, &due); err != nil {
		return nil, err
	}
	return &due, nil
}

// LoanAgents lists the collection agents assigned to a loan.
func (c *Client) LoanAgents(ctx context.Context, id int64) ([]model.UserRef, error) {
	var resp struct {
		Agents []model.UserRef `json:"agents"`
	}
	if err := c.get(ctx, fmt.Sprintf("/loans/%d/agents", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Agents, nil
}

// CollectLoanEMI records an agent-collected loan installment.
func (c *Client) CollectLoanEMI(ctx context.Context, id int64, emi EMICollection) error {
	if !emi.TotalPaid.IsPositive() {
		return fmt.Errorf("invalid request: total_paid must be positive")
	}
	if emi.TotalFeePaid.IsNegative() {
		return fmt.Errorf("invalid request: total_fee_paid must not be negative")
	}
	if err := checkRequest(emi); err != nil {
		return err
	}
	return c.post(ctx, fmt.Sprintf("/loans/%d/collect", id), map[string]any{"emi_data": emi}, nil)
}
