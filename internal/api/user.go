package api

import (
	"context"

	"github.com/himalayanmicrofin/hmfin/internal/model"
)

// Profile fetches the logged-in user's profile.
func (c *Client) Profile(ctx context.Context) (*model.Profile, error) {
	var resp struct {
		User model.Profile `json:"user"`
	}
	if err := c.get(ctx, "/user/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateProfile submits changed profile fields.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]any) error {
	return c.post(ctx, "/user/profile/update", fields, nil)
}

// DashData fetches the landing-screen summary.
func (c *Client) DashData(ctx context.Context) (*model.DashData, error) {
	var dash model.DashData
	if err := c.get(ctx, "/user/dash-data", nil, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

// Referrals lists members referred by the current user.
func (c *Client) Referrals(ctx context.Context) ([]model.Referral, error) {
	var resp struct {
		Referrals []model.Referral `json:"referrals"`
	}
	if err := c.get(ctx, "/user/referrals", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Referrals, nil
}

// Kyc fetches the member's KYC verification status.
func (c *Client) Kyc(ctx context.Context) (*model.KycStatus, error) {
	var kyc model.KycStatus
	if err := c.get(ctx, "/kyc", nil, &kyc); err != nil {
		return nil, err
	}
	return &kyc, nil
}

// ResetKyc discards submitted proofs so the member can start over.
func (c *Client) ResetKyc(ctx context.Context) error {
	return c.post(ctx, "/kyc/reset", nil, nil)
}

// CompanyVPAs fetches the UPI addresses members can pay into.
func (c *Client) CompanyVPAs(ctx context.Context) ([]string, error) {
	var resp struct {
		VPAs []string `json:"vpas"`
	}
	if err := c.get(ctx, "/settings/company-vpas", nil, &resp); err != nil {
		return nil, err
	}
	return resp.VPAs, nil
}
