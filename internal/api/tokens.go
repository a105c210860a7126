package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/metrics"
)

const bearerPrefix = "Bearer "

type tokenRequest struct {
	Token string `json:"token"`
}

type tokenResponse struct {
	baseResponse
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// newCredentials strips the bearer prefix the upstream puts on access tokens
// and reads the expiry from the token claims.
func newCredentials(accessToken, refreshToken string) model.Credentials {
	token := strings.TrimPrefix(accessToken, bearerPrefix)
	return model.Credentials{
		AccessToken:  token,
		RefreshToken: refreshToken,
		ExpiresAt:    tokenExpiry(token),
	}
}

// tokenExpiry returns the exp claim of token, or the zero time when the
// token cannot be parsed. The signature is not verified; the upstream does that.
func tokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// accessToken returns a usable access token, refreshing first when the
// stored one is about to expire.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	creds, err := c.creds.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load credentials: %w", err)
	}
	if creds.Empty() {
		return "", ErrNotAuthenticated
	}

	stale := creds.AccessToken == "" ||
		(!creds.ExpiresAt.IsZero() && time.Until(creds.ExpiresAt) < c.leeway)
	if !stale {
		return creds.AccessToken, nil
	}

	if err := c.refresh(ctx); err != nil {
		return "", err
	}
	creds, err = c.creds.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load credentials: %w", err)
	}
	return creds.AccessToken, nil
}

// refresh exchanges the stored refresh token for a new pair. Concurrent
// callers share one upstream call.
func (c *Client) refresh(ctx context.Context) error {
	_, err, shared := c.refreshes.Do("refresh", func() (any, error) {
		creds, err := c.creds.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load credentials: %w", err)
		}
		if creds.RefreshToken == "" {
			return nil, ErrNoRefreshToken
		}

		var resp tokenResponse
		req := request{
			method:   http.MethodPost,
			path:     "/auth/token",
			endpoint: "/auth/token",
			body:     tokenRequest{Token: creds.RefreshToken},
		}
		if err := c.send(ctx, req, &resp); err != nil {
			metrics.RecordTokenRefresh("failure")
			return nil, err
		}

		if err := c.creds.Save(ctx, newCredentials(resp.AccessToken, resp.RefreshToken)); err != nil {
			metrics.RecordTokenRefresh("failure")
			return nil, fmt.Errorf("save credentials: %w", err)
		}
		metrics.RecordTokenRefresh("success")
		return nil, nil
	})
	if shared {
		c.log.Debug().Msg("Joined in-flight token refresh")
	}
	return err
}
