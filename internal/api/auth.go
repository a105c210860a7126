package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

type authResponse struct {
	baseResponse
	User         model.UserProfile `json:"user"`
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"refreshToken"`
}

type userResponse struct {
	baseResponse
	User model.UserProfile `json:"user"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
	Token    string `json:"token"`
}

// Register creates an account. The issued tokens are returned, not stored;
// the session container decides where they go.
func (c *Client) Register(ctx context.Context, data model.RegisterData) (model.AuthResult, error) {
	return c.authenticate(ctx, "/auth/register", data)
}

// Login signs in with email and password.
func (c *Client) Login(ctx context.Context, data model.LoginData) (model.AuthResult, error) {
	return c.authenticate(ctx, "/auth/login", data)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (model.AuthResult, error) {
	var resp authResponse
	err := c.call(ctx, request{
		method:   http.MethodPost,
		path:     path,
		endpoint: path,
		body:     body,
	}, &resp)
	if err != nil {
		return model.AuthResult{}, err
	}
	return model.AuthResult{
		User:        resp.User,
		Credentials: newCredentials(resp.AccessToken, resp.RefreshToken),
	}, nil
}

// Logout revokes the stored refresh token upstream.
func (c *Client) Logout(ctx context.Context) error {
	creds, err := c.creds.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	if creds.RefreshToken == "" {
		return ErrNoRefreshToken
	}

	var resp baseResponse
	return c.call(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/logout",
		endpoint: "/auth/logout",
		body:     tokenRequest{Token: creds.RefreshToken},
	}, &resp)
}

// GetUser fetches the profile of the current session.
func (c *Client) GetUser(ctx context.Context) (model.UserProfile, error) {
	var resp userResponse
	err := c.call(ctx, request{
		method:   http.MethodGet,
		path:     "/auth/user",
		endpoint: "/auth/user",
		authed:   true,
	}, &resp)
	if err != nil {
		return model.UserProfile{}, err
	}
	return resp.User, nil
}

// UpdateUser changes the profile of the current session.
func (c *Client) UpdateUser(ctx context.Context, update model.ProfileUpdate) (model.UserProfile, error) {
	var resp userResponse
	err := c.call(ctx, request{
		method:   http.MethodPatch,
		path:     "/auth/user",
		endpoint: "/auth/user",
		body:     update,
		authed:   true,
	}, &resp)
	if err != nil {
		return model.UserProfile{}, err
	}
	return resp.User, nil
}

// ForgotPassword asks the upstream to mail a reset code to email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	var resp baseResponse
	return c.call(ctx, request{
		method:   http.MethodPost,
		path:     "/password-reset",
		endpoint: "/password-reset",
		body:     forgotPasswordRequest{Email: email},
	}, &resp)
}

// ResetPassword sets a new password using the mailed code.
func (c *Client) ResetPassword(ctx context.Context, password, token string) error {
	var resp baseResponse
	return c.call(ctx, request{
		method:   http.MethodPost,
		path:     "/password-reset/reset",
		endpoint: "/password-reset/reset",
		body:     resetPasswordRequest{Password: password, Token: token},
	}, &resp)
}
