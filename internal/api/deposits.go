package api

import (
	"context"
	"fmt"

	"github.com/himalayanmicrofin/hmfin/internal/model"
)

// ApplyForDeposit submits an FD/RD application with raw inputs only.
func (c *Client) ApplyForDeposit(ctx context.Context, app DepositApplication) (*model.Deposit, error) {
	if !app.Amount.IsPositive() {
		return nil, fmt.Errorf("invalid request: amount must be positive")
	}
	if err := checkRequest(app); err != nil {
		return nil, err
	}

	var resp struct {
		Deposit model.Deposit `json:"deposit"`
	}
	if err := c.post(ctx, "/deposits/apply", map[string]any{"deposit_data": app}, &resp); err != nil {
		return nil, err
	}
	return &resp.Deposit, nil
}

// Deposits lists the member's deposits; category is "FD" or "RD".
func (c *Client) Deposits(ctx context.Context, category string, skip, limit int) ([]model.Deposit, error) {
	q := pageQuery(skip, limit)
	q.Set("category", category)

	var resp struct {
		Deposits []model.Deposit `json:"deposits"`
	}
	if err := c.get(ctx, "/deposits", q, &resp); err != nil {
		return nil, err
	}
	return resp.Deposits, nil
}

// DepositDetails fetches one deposit.
func (c *Client) DepositDetails(ctx context.Context, id int64) (*model.Deposit, error) {
	var resp struct {
		Deposit model.Deposit `json:"deposit"`
	}
	if err := c.get(ctx, fmt.Sprintf("/deposits/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Deposit, nil
}

// DepositRepayments lists collected installments for a deposit.
func (c *Client) DepositRepayments(ctx context.Context, id int64, skip, limit int) ([]model.Repayment, error) {
	var resp struct {
		Repayments []model.Repayment `json:"repayments"`
	}
	if err := c.get(ctx, fmt.Sprintf("/deposits/%d/repayments", id), pageQuery(skip, limit), &resp); err != nil {
		return nil, err
	}
	return resp.Repayments, nil
}

// DepositDue fetches the server's due computation for a deposit.
func (c *Client) DepositDue(ctx context.Context, id int64) (*model.DueInfo, error) {
	var due model.DueInfo
	if err := c.get(ctx, fmt.Sprintf("/deposits/%d/due", id), nil, &due); err != nil {
		return nil, err
	}
	return &due, nil
}

// DepositAgents lists the collection agents assigned to a deposit.
func (c *Client) DepositAgents(ctx context.Context, id int64) ([]model.UserRef, error) {
	var resp struct {
		Agents []model.UserRef `json:"agents"`
	}
	if err := c.get(ctx, fmt.Sprintf("/deposits/%d/agents", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Agents, nil
}

// UpdateDeposit changes mutable deposit details, currently the nominee.
func (c *Client) UpdateDeposit(ctx context.Context, id int64, nominee Nominee) error {
	if err := checkRequest(nominee); err != nil {
		return err
	}
	return c.post(ctx, fmt.Sprintf("/deposits/%d/update", id), map[string]any{"nominee": nominee}, nil)
}

// CollectDepositEMI records an agent-collected deposit installment.
func (c *Client) CollectDepositEMI(ctx context.Context, id int64, emi EMICollection) error {
	if !emi.TotalPaid.IsPositive() {
		return fmt.Errorf("invalid request: total_paid must be positive")
	}
	if emi.TotalFeePaid.IsNegative() {
		return fmt.Errorf("invalid request: total_fee_paid must not be negative")
	}
	if err := checkRequest(emi); err != nil {
		return err
	}
	return c.post(ctx, fmt.Sprintf("/deposits/%d/collect", id), map[string]any{"emi_data": emi}, nil)
}
