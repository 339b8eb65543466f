package api

import (
	"context"
	"net/http"

	"github.com/apolyakov/storefront/internal/models"
)

const loginPath = "/auth/login"

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, loginPath, creds, nil, &resp); err != nil {
		return models.LoginResponse{}, err
	}
	return resp, nil
}
