package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/himalayanmicrofin/hmfin/internal/model"
)

func pageQuery(skip, limit int) url.Values {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

// LoanPlans lists the lending products open for application.
func (c *Client) LoanPlans(ctx context.Context, skip, limit int) ([]model.LoanPlan, error) {
	var resp struct {
		Plans []model.LoanPlan `json:"plans"`
	}
	if err := c.get(ctx, "/plans/loan", pageQuery(skip, limit), &resp); err != nil {
		return nil, err
	}
	return resp.Plans, nil
}

// LoanPlanDetails fetches a single loan plan.
func (c *Client) LoanPlanDetails(ctx context.Context, id int64) (*model.LoanPlan, error) {
	var resp struct {
		Plan model.LoanPlan `json:"plan"`
	}
	if err := c.get(ctx, fmt.Sprintf("/plans/loan/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Plan, nil
}

// DepositPlans lists FD or RD products; category is "FD" or "RD".
func (c *Client) DepositPlans(ctx context.Context, category string, skip, limit int) ([]model.DepositPlan, error) {
	q := pageQuery(skip, limit)
	q.Set("category", category)

	var resp struct {
		Plans []model.DepositPlan `json:"plans"`
	}
	if err := c.get(ctx, "/plans/deposit", q, &resp); err != nil {
		return nil, err
	}
	return resp.Plans, nil
}

// DepositPlanDetails fetches a single deposit plan.
func (c *Client) DepositPlanDetails(ctx context.Context, id int64) (*model.DepositPlan, error) {
	var resp struct {
		Plan model.DepositPlan `json:"plan"`
	}
	if err := c.get(ctx, fmt.Sprintf("/plans/deposit/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Plan, nil
}
