package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/heartmarshall/contactbook/internal/domain"
)

// Login exchanges email and password for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (domain.Credentials, error) {
	resp, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/login",
		body:   map[string]string{"email": email, "password": password},
	})
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("login: %w", err)
	}

	var payload apiLoginResponse
	if err := json.Unmarshal(resp.body, &payload); err != nil {
		return domain.Credentials{}, fmt.Errorf("login: decode json: %w", err)
	}
	if payload.AccessToken == "" {
		return domain.Credentials{}, fmt.Errorf("login: %w", &domain.RequestError{
			Status:  resp.status,
			Message: "response has no access token",
		})
	}

	return domain.Credentials{AccessToken: payload.AccessToken, User: payload.User.toDomain()}, nil
}

// Register creates an account. The user signs in separately afterwards.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/register",
		body:   map[string]string{"name": name, "email": email, "password": password},
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Logout asks the backend to invalidate the current token.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := c.do(ctx, request{method: http.MethodGet, path: "/logout", authed: true}); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
