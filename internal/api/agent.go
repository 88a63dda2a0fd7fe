package api

import (
	"context"
	"fmt"

	"github.com/himalayanmicrofin/hmfin/internal/model"
)

// Assignments lists loans or deposits assigned to the agent for
// collection; assignmentType is "Loan" or "Deposit".
func (c *Client) Assignments(ctx context.Context, assignmentType string, skip, limit int) ([]model.Assignment, error) {
	q := pageQuery(skip, limit)
	q.Set("type", assignmentType)

	var resp struct {
		Assignments []model.Assignment `json:"assignments"`
	}
	if err := c.get(ctx, "/user/assignments", q, &resp); err != nil {
		return nil, err
	}
	return resp.Assignments, nil
}

// Repayment fetches a single collected repayment.
func (c *Client) Repayment(ctx context.Context, id int64) (*model.Repayment, error) {
	var resp struct {
		Repayment model.Repayment `json:"repayment"`
	}
	if err := c.get(ctx, fmt.Sprintf("/repayment/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Repayment, nil
}

// CorrectRepayment replaces a wrongly entered collection. The server
// reverses the old ledger entry and posts the corrected one.
func (c *Client) CorrectRepayment(ctx context.Context, id int64, emi EMICollection) error {
	if !emi.TotalPaid.IsPositive() {
		return fmt.Errorf("invalid request: total_paid must be positive")
	}
	if emi.TotalFeePaid.IsNegative() {
		return fmt.Errorf("invalid request: total_fee_paid must not be negative")
	}
	if err := checkRequest(emi); err != nil {
		return err
	}
	return c.post(ctx, fmt.Sprintf("/repayment/%d/correct", id), map[string]any{"emi_data": emi}, nil)
}
