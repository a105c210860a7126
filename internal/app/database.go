// Package app provides credential storage initialization.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/FindTheRhythm/stellar-burgers/config"
	"github.com/FindTheRhythm/stellar-burgers/internal/circuitbreaker"
	"github.com/FindTheRhythm/stellar-burgers/internal/repository"
)

// DatabaseComponents holds the credential store of the session and, with the
// mongo backend, its connection and circuit breaker.
type DatabaseComponents struct {
	DB                        *repository.MongoDB
	Credentials               repository.CredentialStore
	CredentialsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase creates the credential store for the configured backend.
// When MongoDB cannot be reached the session falls back to in-memory
// credentials.
func InitializeDatabase(ctx context.Context, cfg config.Config) *DatabaseComponents {
	if cfg.Session.Backend != config.BackendMongo {
		return &DatabaseComponents{Credentials: repository.NewMemoryCredentialStore()}
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := repository.ConnectMongo(connectCtx, cfg.Database.URI, cfg.Database.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory credentials")
		return &DatabaseComponents{Credentials: repository.NewMemoryCredentialStore()}
	}

	log.Info().Str("database", cfg.Database.DatabaseName).Msg("Connected to MongoDB")

	credentialsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Database.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Database.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Database.CircuitBreakerTimeout,
		Name:             "mongodb-credentials",
	})

	repo := repository.NewCredentialRepository(db.Database, cfg.Session.ID, cfg.Session.TTL)

	return &DatabaseComponents{
		DB:                        db,
		Credentials:               repository.NewCredentialStoreWithCircuitBreaker(repo, credentialsCB),
		CredentialsCircuitBreaker: credentialsCB,
	}
}
