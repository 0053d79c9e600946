package api

import (
	"context"

	"ufcdash/internal/dto"
)

// Login exchanges credentials for a bearer token and installs it as the
// current session. Unauthenticated by definition, so no retry either — the
// user is sitting at the prompt.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) error {
	const op = "api.Login"
	if err := req.Validate(); err != nil {
		return err
	}
	var resp dto.LoginResponse
	if err := c.post(ctx, op, "/api/auth/login", req, &resp, false, false); err != nil {
		return err
	}
	return c.session.Set(resp.Token)
}

// Register creates an account. The caller logs in separately afterwards.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) error {
	const op = "api.Register"
	if err := req.Validate(); err != nil {
		return err
	}
	return c.post(ctx, op, "/api/auth/register", req, nil, false, false)
}

// Logout clears the stored credential. Purely local; the token simply ages
// out server-side.
func (c *Client) Logout() error {
	return c.session.Set("")
}
