package repository

import (
	"context"

	"github.com/FindTheRhythm/stellar-burgers/internal/circuitbreaker"
	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

// CredentialStoreWithCircuitBreaker guards a CredentialStore with a circuit breaker.
type CredentialStoreWithCircuitBreaker struct {
	store          CredentialStore
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCredentialStoreWithCircuitBreaker wraps store with cb.
func NewCredentialStoreWithCircuitBreaker(store CredentialStore, cb *circuitbreaker.CircuitBreaker) *CredentialStoreWithCircuitBreaker {
	return &CredentialStoreWithCircuitBreaker{
		store:          store,
		circuitBreaker: cb,
	}
}

// Load reads the credentials unless the circuit is open.
func (r *CredentialStoreWithCircuitBreaker) Load(ctx context.Context) (model.Credentials, error) {
	var result model.Credentials
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.store.Load(ctx)
		return cbErr
	})
	return result, err
}

// Save writes the credentials unless the circuit is open.
func (r *CredentialStoreWithCircuitBreaker) Save(ctx context.Context, creds model.Credentials) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.store.Save(ctx, creds)
	})
}

// Clear deletes the credentials unless the circuit is open.
func (r *CredentialStoreWithCircuitBreaker) Clear(ctx context.Context) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.store.Clear(ctx)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CredentialStoreWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
