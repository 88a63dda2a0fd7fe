package api

import (
	"context"

	"github.com/himalayanmicrofin/hmfin/internal/model"
)

// AuthResult is the token and user returned by signin/verify.
type AuthResult struct {
	Token string        `json:"token"`
	User  model.Profile `json:"user"`
}

// SignIn exchanges credentials for a session token.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result AuthResult
	if err := c.post(ctx, "/auth/signin", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SignUp registers a new member. The account becomes usable after OTP
// verification.
func (c *Client) SignUp(ctx context.Context, phone, email, password, confirm, name string) error {
	body := map[string]string{
		"phone":    phone,
		"email":    email,
		"password": password,
		"confirm":  confirm,
		"name":     name,
	}
	return c.post(ctx, "/auth/signup", body, nil)
}

// VerifySignUp confirms a registration OTP and returns the session.
func (c *Client) VerifySignUp(ctx context.Context, phone, otp string) (*AuthResult, error) {
	body := map[string]string{"phone": phone, "otp": otp}
	var result AuthResult
	if err := c.post(ctx, "/auth/verify-signup", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResendOTP requests a fresh OTP for registration or password reset.
func (c *Client) ResendOTP(ctx context.Context, phone, otpType string) error {
	body := map[string]string{"phone": phone, "type": otpType}
	return c.post(ctx, "/auth/resend-otp", body, nil)
}

// RequestPasswordReset starts the forgot-password flow.
func (c *Client) RequestPasswordReset(ctx context.Context, phone string) error {
	return c.post(ctx, "/auth/req-pwd-reset", map[string]string{"phone": phone}, nil)
}

// ResetPassword completes the forgot-password flow with the OTP.
func (c *Client) ResetPassword(ctx context.Context, phone, otp, password, confirm string) error {
	body := map[string]string{
		"phone":    phone,
		"otp":      otp,
		"password": password,
		"confirm":  confirm,
	}
	return c.post(ctx, "/auth/reset-pwd", body, nil)
}

// ChangePassword updates the logged-in user's password.
func (c *Client) ChangePassword(ctx context.Context, oldPass, newPass, confirm string) error {
	body := map[string]string{
		"old_pass": oldPass,
		"new_pass": newPass,
		"confirm":  confirm,
	}
	return c.post(ctx, "/user/settings/change-pass", body, nil)
}
