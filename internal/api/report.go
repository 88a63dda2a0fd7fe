package api

import (
	"context"
	"time"

	"github.com/himalayanmicrofin/hmfin/internal/model"
)

// ReportFilter narrows the collection report. Zero values mean no
// filter; PlanType may be "Loan" or "Deposit".
type ReportFilter struct {
	From        time.Time
	To          time.Time
	CollectedBy string
	PlanType    string
}

// Report lists collected repayments matching the filter, along with
// the total match count so callers can page.
func (c *Client) Report(ctx context.Context, filter ReportFilter, skip, limit int) ([]model.ReportEntry, int64, error) {
	q := pageQuery(skip, limit)
	if !filter.From.IsZero() {
		q.Set("filter_from", filter.From.Format("2006-01-02"))
	}
	if !filter.To.IsZero() {
		q.Set("filter_to", filter.To.Format("2006-01-02"))
	}
	if filter.CollectedBy != "" {
		q.Set("filter_collected_by", filter.CollectedBy)
	}
	if filter.PlanType != "" && filter.PlanType != "All" {
		q.Set("filter_plan_type", filter.PlanType)
	}

	var resp struct {
		Entries []model.ReportEntry `json:"entries"`
		Total   int64               `json:"total"`
	}
	if err := c.get(ctx, "/report", q, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Entries, resp.Total, nil
}

// PendingReport lists repayments collected but not yet settled by the
// agent.
func (c *Client) PendingReport(ctx context.Context, skip, limit int) ([]model.ReportEntry, error) {
	var resp struct {
		Entries []model.ReportEntry `json:"entries"`
	}
	if err := c.get(ctx, "/report/pendings", pageQuery(skip, limit), &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// MarkAsPaid settles a pending report entry.
func (c *Client) MarkAsPaid(ctx context.Context, id int64) error {
	return c.post(ctx, "/report/mark-paid", map[string]int64{"id": id}, nil)
}
