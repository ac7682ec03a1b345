package shopapi

import (
	"context"
	"fmt"
	"net/http"

	"fsanano/shop-client/internal/model"
)

// Session is the result of a successful login or sign-up.
type Session struct {
	User  model.User
	Token string
}

// Login exchanges credentials for a token, then loads the caller's profile with it.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (Session, error) {
	jwt, err := call[model.JWTResponse](ctx, c, request{method: http.MethodPost, path: "auth/login", body: req})
	if err != nil {
		return Session{}, err
	}
	if jwt.Token == "" {
		return Session{}, fmt.Errorf("login: empty token in response")
	}
	user, err := c.fetchMe(ctx, jwt.Token)
	if err != nil {
		return Session{}, err
	}
	return Session{User: user, Token: jwt.Token}, nil
}

// SignUp registers the account and logs in with the same credentials.
func (c *Client) SignUp(ctx context.Context, req model.SignUpRequest) (Session, error) {
	if err := exec(ctx, c, request{method: http.MethodPost, path: "auth/register", body: req}); err != nil {
		return Session{}, err
	}
	return c.Login(ctx, model.LoginRequest{Username: req.Username, Password: req.Password})
}

// Logout has no server-side counterpart; tokens simply expire.
func (c *Client) Logout(ctx context.Context) error {
	return ctx.Err()
}

func (c *Client) fetchMe(ctx context.Context, token string) (model.User, error) {
	u, err := call[model.UserResponse](ctx, c, request{method: http.MethodGet, path: "users/me", header: bearer(token)})
	if err != nil {
		return model.User{}, err
	}
	return u.ToUser(), nil
}
