// Package app provides service initialization.
package app

import (
	"github.com/FindTheRhythm/stellar-burgers/config"
	"github.com/FindTheRhythm/stellar-burgers/internal/api"
	"github.com/FindTheRhythm/stellar-burgers/internal/cache"
	"github.com/FindTheRhythm/stellar-burgers/internal/circuitbreaker"
	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/repository"
	"github.com/FindTheRhythm/stellar-burgers/internal/store"
)

// ServiceComponents holds the upstream client and the session store.
type ServiceComponents struct {
	Client     *api.Client
	Store      *store.Store
	OrderCache *cache.Sharded[model.Order]
}

// InitializeServices creates the upstream client and the store on top of it.
func InitializeServices(cfg config.Config, creds repository.CredentialStore) (*ServiceComponents, error) {
	breaker := circuitbreaker.DefaultConfig()
	breaker.Name = "upstream-api"
	if cfg.Upstream.CircuitBreakerFailureThreshold > 0 {
		breaker.FailureThreshold = cfg.Upstream.CircuitBreakerFailureThreshold
	}
	if cfg.Upstream.CircuitBreakerSuccessThreshold > 0 {
		breaker.SuccessThreshold = cfg.Upstream.CircuitBreakerSuccessThreshold
	}
	if cfg.Upstream.CircuitBreakerTimeout > 0 {
		breaker.Timeout = cfg.Upstream.CircuitBreakerTimeout
	}

	apiCfg := api.DefaultConfig()
	apiCfg.Breaker = breaker
	if cfg.Upstream.BaseURL != "" {
		apiCfg.BaseURL = cfg.Upstream.BaseURL
	}
	if cfg.Upstream.Timeout > 0 {
		apiCfg.Timeout = cfg.Upstream.Timeout
	}
	if cfg.Upstream.RefreshLeeway > 0 {
		apiCfg.RefreshLeeway = cfg.Upstream.RefreshLeeway
	}

	var opts []api.Option
	var orderCache *cache.Sharded[model.Order]
	if cfg.Cache.Size > 0 {
		shards := cfg.Cache.Shards
		if shards <= 0 {
			shards = cache.DefaultShards
		}
		orderCache = cache.NewSharded[model.Order](cfg.Cache.Size, cfg.Cache.TTL, shards)
		opts = append(opts, api.WithOrderCache(orderCache))
	}

	client := api.New(apiCfg, creds, opts...)

	st, err := store.New(client, creds)
	if err != nil {
		if orderCache != nil {
			orderCache.Stop()
		}
		return nil, err
	}

	return &ServiceComponents{
		Client:     client,
		Store:      st,
		OrderCache: orderCache,
	}, nil
}
