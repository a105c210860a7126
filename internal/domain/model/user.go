package model

import (
	"time"
)

// UserProfile is the profile of the signed-in user.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credentials is the token pair issued on register/login or refresh.
type Credentials struct {
	AccessToken  string    `bson:"access_token" json:"access_token"`
	RefreshToken string    `bson:"refresh_token" json:"refresh_token"`
	ExpiresAt    time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
}

// Empty reports whether no token is held.
func (c Credentials) Empty() bool {
	return c.AccessToken == "" && c.RefreshToken == ""
}

// CredentialsDocument is the persisted form of a session's credentials.
// ExpiresAt drives the collection TTL index.
type CredentialsDocument struct {
	SessionID   string      `bson:"_id"`
	Credentials Credentials `bson:"credentials"`
	UpdatedAt   time.Time   `bson:"updated_at"`
	ExpiresAt   time.Time   `bson:"expires_at"`
}

// RegisterData is the payload of a registration.
type RegisterData struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginData is the payload of a login.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is a partial profile change. Empty fields are left as is.
type ProfileUpdate struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User        UserProfile
	Credentials Credentials
}
