package gateway

import (
	"context"
	"net/http"
)

// Authentication endpoints. Register doubles as the "send OTP" action: the
// service mails a one-time code to the given address, and re-registering the
// same draft resends it.

func (c *Client) Register(ctx context.Context, req RegistrationRequest) error {
	return c.do(ctx, http.MethodPost, "/foreign-users/register", "", req, nil)
}

func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	body := map[string]string{"email": email, "otp": otp}
	return c.do(ctx, http.MethodPost, "/foreign-users/verify-otp", "", body, nil)
}

func (c *Client) SetPassword(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/foreign-users/set-password", "", body, nil)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/foreign-users/login", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Credential(), nil
}

// CurrentUser fetches the profile of the credential's owner.
func (c *Client) CurrentUser(ctx context.Context, token string) (*VisitorProfile, error) {
	var profile VisitorProfile
	if err := c.do(ctx, http.MethodGet, "/foreign-users/me", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Password recovery mirrors the registration OTP pattern.

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/foreign-users/forgot-password", "", body, nil)
}

func (c *Client) VerifyResetOTP(ctx context.Context, email, otp string) error {
	body := map[string]string{"email": email, "otp": otp}
	return c.do(ctx, http.MethodPost, "/foreign-users/verify-reset-otp", "", body, nil)
}

func (c *Client) ResetPassword(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/foreign-users/reset-password", "", body, nil)
}
