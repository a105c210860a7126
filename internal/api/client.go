// Package api is the REST client of the Stellar Burgers upstream API. It
// handles bearer authentication, token refresh, circuit breaking and the
// order-by-number cache, and implements the collaborator interfaces of the
// store package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/FindTheRhythm/stellar-burgers/internal/cache"
	"github.com/FindTheRhythm/stellar-burgers/internal/circuitbreaker"
	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/logger"
	"github.com/FindTheRhythm/stellar-burgers/internal/metrics"
)

// DefaultBaseURL is the public Stellar Burgers API.
const DefaultBaseURL = "https://norma.nomoreparties.space/api"

const maxResponseBytes = 4 << 20

// CredentialStore reads and writes the token pair of the current session.
// Load returns empty credentials when none are stored.
type CredentialStore interface {
	Load(ctx context.Context) (model.Credentials, error)
	Save(ctx context.Context, creds model.Credentials) error
	Clear(ctx context.Context) error
}

// Config holds client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RefreshLeeway refreshes the access token this long before it expires.
	RefreshLeeway time.Duration
	Breaker       circuitbreaker.Config
}

// DefaultConfig returns the settings used against the public API.
func DefaultConfig() Config {
	breaker := circuitbreaker.DefaultConfig()
	breaker.Name = "upstream-api"
	return Config{
		BaseURL:       DefaultBaseURL,
		Timeout:       10 * time.Second,
		RefreshLeeway: 30 * time.Second,
		Breaker:       breaker,
	}
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithOrderCache serves settled order lookups from oc.
func WithOrderCache(oc cache.Cache[model.Order]) Option {
	return func(c *Client) {
		c.orderCache = oc
	}
}

// Client talks to the upstream API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
	creds      CredentialStore
	orderCache cache.Cache[model.Order]
	refreshes  singleflight.Group
	leeway     time.Duration
	log        zerolog.Logger
}

// New creates a client. creds supplies and receives the session tokens.
func New(cfg Config, creds CredentialStore, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	breakerCfg := cfg.Breaker
	breakerCfg.IsFailure = countsAgainstUpstream

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    circuitbreaker.New(breakerCfg),
		creds:      creds,
		leeway:     cfg.RefreshLeeway,
		log:        logger.WithComponent("api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Breaker exposes the upstream circuit breaker for health reporting.
func (c *Client) Breaker() *circuitbreaker.CircuitBreaker {
	return c.breaker
}

// request describes one upstream call. endpoint is the path template used
// as the metrics label.
type request struct {
	method   string
	path     string
	endpoint string
	body     any
	authed   bool
}

// call performs req and decodes the reply into out. An authenticated call
// rejected with an expired token is retried once after a refresh.
func (c *Client) call(ctx context.Context, req request, out envelope) error {
	err := c.send(ctx, req, out)
	if !req.authed || !isExpiredToken(err) {
		return err
	}

	log := logger.Ctx(ctx, c.log)
	log.Debug().Str("endpoint", req.endpoint).Msg("Access token expired, refreshing")
	if rerr := c.refresh(ctx); rerr != nil {
		return rerr
	}
	return c.send(ctx, req, out)
}

func (c *Client) send(ctx context.Context, req request, out envelope) error {
	var payload []byte
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", req.endpoint, err)
		}
		payload = b
	}

	var token string
	if req.authed {
		t, err := c.accessToken(ctx)
		if err != nil {
			return err
		}
		token = t
	}

	return c.breaker.Execute(ctx, func() error {
		httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("build %s request: %w", req.endpoint, err)
		}
		httpReq.Header.Set("Content-Type", "application/json;charset=utf-8")
		httpReq.Header.Set("Accept", "application/json")
		if token != "" {
			httpReq.Header.Set("Authorization", bearerPrefix+token)
		}
		if id := logger.RequestIDFromContext(ctx); id != "" {
			httpReq.Header.Set("X-Request-ID", id)
		}

		start := time.Now()
		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			metrics.RecordUpstreamRequest(req.method, req.endpoint, 0, time.Since(start))
			return err
		}
		defer resp.Body.Close()
		metrics.RecordUpstreamRequest(req.method, req.endpoint, resp.StatusCode, time.Since(start))

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return fmt.Errorf("read %s response: %w", req.endpoint, err)
		}
		return decode(resp.StatusCode, body, out)
	})
}
