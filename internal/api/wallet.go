package api

import (
	"context"
	"fmt"

	"github.com/himalayanmicrofin/hmfin/internal/model"
)

// Wallet fetches the member's wallet balance.
func (c *Client) Wallet(ctx context.Context) (*model.Wallet, error) {
	var wallet model.Wallet
	if err := c.get(ctx, "/wallet", nil, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// WalletTransactions lists wallet ledger lines, newest first.
func (c *Client) WalletTransactions(ctx context.Context, skip, limit int) ([]model.WalletTransaction, error) {
	var resp struct {
		Txns []model.WalletTransaction `json:"txns"`
	}
	if err := c.get(ctx, "/wallet/txns", pageQuery(skip, limit), &resp); err != nil {
		return nil, err
	}
	return resp.Txns, nil
}

// Withdrawals lists withdrawal requests, optionally filtered by a
// search term.
func (c *Client) Withdrawals(ctx context.Context, skip, limit int, searchTerm string) ([]model.Withdrawal, error) {
	q := pageQuery(skip, limit)
	if searchTerm != "" {
		q.Set("src_term", searchTerm)
	}

	var resp struct {
		Withdrawals []model.Withdrawal `json:"withdrawals"`
	}
	if err := c.get(ctx, "/wallet/withdrawals", q, &resp); err != nil {
		return nil, err
	}
	return resp.Withdrawals, nil
}

// RequestWithdrawal asks for a payout from the wallet. Approval is a
// server-side workflow; the request comes back Pending.
func (c *Client) RequestWithdrawal(ctx context.Context, req WithdrawalRequest) error {
	if !req.WithdrawalAmount.IsPositive() {
		return fmt.Errorf("invalid request: withdrawal_amount must be positive")
	}
	return c.post(ctx, "/wallet/withdrawal", req, nil)
}
