package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

const credentialsCollection = "credentials"

// DefaultSessionTTL is how long stored credentials outlive their last save.
const DefaultSessionTTL = 30 * 24 * time.Hour

// CredentialRepository stores one session's credentials in MongoDB, keyed by
// session id.
type CredentialRepository struct {
	collection *mongo.Collection
	sessionID  string
	ttl        time.Duration
}

// NewCredentialRepository creates a repository for sessionID. A non-positive
// ttl uses DefaultSessionTTL.
func NewCredentialRepository(db *mongo.Database, sessionID string, ttl time.Duration) *CredentialRepository {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &CredentialRepository{
		collection: db.Collection(credentialsCollection),
		sessionID:  sessionID,
		ttl:        ttl,
	}
}

// Load returns the stored credentials, or empty ones if none exist.
func (r *CredentialRepository) Load(ctx context.Context) (model.Credentials, error) {
	var doc model.CredentialsDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": r.sessionID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Credentials{}, nil
	}
	if err != nil {
		return model.Credentials{}, err
	}
	return doc.Credentials, nil
}

// Save replaces the stored credentials.
func (r *CredentialRepository) Save(ctx context.Context, creds model.Credentials) error {
	now := time.Now().UTC()
	doc := model.CredentialsDocument{
		SessionID:   r.sessionID,
		Credentials: creds,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(r.ttl),
	}
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": r.sessionID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Clear deletes the stored credentials.
func (r *CredentialRepository) Clear(ctx context.Context) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": r.sessionID})
	return err
}
