package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/FindTheRhythm/stellar-burgers/config"
	"github.com/FindTheRhythm/stellar-burgers/internal/repository"
	"github.com/FindTheRhythm/stellar-burgers/internal/store"
)

// RestoreSession starts the startup loads: the ingredient catalog and, when
// credentials were persisted by an earlier run, the profile. It does not wait
// for them; the returned tasks settle in the background.
func RestoreSession(ctx context.Context, st *store.Store, creds repository.CredentialStore, cfg config.SessionConfig) []*store.Task {
	var tasks []*store.Task

	if cfg.FetchCatalogOnStart {
		tasks = append(tasks, st.Ingredients.Fetch(ctx))
	}

	if !cfg.RestoreOnStart {
		return tasks
	}

	stored, err := creds.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("session_id", cfg.ID).Msg("Failed to load stored credentials")
		return tasks
	}
	if stored.Empty() {
		return tasks
	}

	log.Info().Str("session_id", cfg.ID).Msg("Restoring session from stored credentials")
	return append(tasks, st.User.FetchProfile(ctx))
}
