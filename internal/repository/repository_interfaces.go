package repository

import (
	"context"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

// CredentialStore holds the token pair of one session. Load returns empty
// credentials, not an error, when nothing is stored.
type CredentialStore interface {
	Load(ctx context.Context) (model.Credentials, error)
	Save(ctx context.Context, creds model.Credentials) error
	Clear(ctx context.Context) error
}
