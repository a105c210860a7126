package store

import (
	"context"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

// AuthAPI is the session side of the upstream API.
type AuthAPI interface {
	Register(ctx context.Context, data model.RegisterData) (model.AuthResult, error)
	Login(ctx context.Context, data model.LoginData) (model.AuthResult, error)
	Logout(ctx context.Context) error
	GetUser(ctx context.Context) (model.UserProfile, error)
	UpdateUser(ctx context.Context, update model.ProfileUpdate) (model.UserProfile, error)
}

// CredentialSink persists the issued token pair.
type CredentialSink interface {
	Save(ctx context.Context, creds model.Credentials) error
	Clear(ctx context.Context) error
}

// UserState is the session snapshot. IsAuthenticated is true iff Data came
// from a successful register, login or profile call.
type UserState struct {
	Data            *model.UserProfile  `json:"data"`
	IsAuthenticated bool                `json:"isAuthenticated"`
	LoginError      *model.RequestError `json:"loginError"`
	RegisterError   *model.RequestError `json:"registerError"`
	ProfileError    *model.RequestError `json:"profileError"`
}

// InitialUserState returns the signed-out state.
func InitialUserState() UserState {
	return UserState{}
}

// UserEvent is a session lifecycle transition.
type UserEvent interface {
	apply(UserState) UserState
}

// Registered is the lifecycle event of a registration.
type Registered struct {
	Result Result[model.UserProfile]
}

func (e Registered) apply(s UserState) UserState {
	switch e.Result.Phase {
	case PhasePending:
		s.RegisterError = nil
	case PhaseSucceeded:
		s = authenticated(s, e.Result.Payload)
	case PhaseFailed:
		s.RegisterError = e.Result.Err
	}
	return s
}

// LoggedIn is the lifecycle event of a login.
type LoggedIn struct {
	Result Result[model.UserProfile]
}

func (e LoggedIn) apply(s UserState) UserState {
	switch e.Result.Phase {
	case PhasePending:
		s.LoginError = nil
	case PhaseSucceeded:
		s = authenticated(s, e.Result.Payload)
	case PhaseFailed:
		s.LoginError = e.Result.Err
	}
	return s
}

// LoggedOut is the lifecycle event of a logout. Both outcomes end the local
// session.
type LoggedOut struct {
	Result Result[struct{}]
}

func (e LoggedOut) apply(s UserState) UserState {
	if e.Result.Phase == PhasePending {
		return s
	}
	s.Data = nil
	s.IsAuthenticated = false
	return s
}

// ProfileFetched is the lifecycle event of a profile fetch.
type ProfileFetched struct {
	Result Result[model.UserProfile]
}

func (e ProfileFetched) apply(s UserState) UserState {
	return applyProfile(s, e.Result)
}

// ProfileUpdated is the lifecycle event of a profile update.
type ProfileUpdated struct {
	Result Result[model.UserProfile]
}

func (e ProfileUpdated) apply(s UserState) UserState {
	return applyProfile(s, e.Result)
}

func applyProfile(s UserState, r Result[model.UserProfile]) UserState {
	switch r.Phase {
	case PhasePending:
		s.ProfileError = nil
	case PhaseSucceeded:
		s = authenticated(s, r.Payload)
		s.ProfileError = nil
	case PhaseFailed:
		s.ProfileError = r.Err
	}
	return s
}

func authenticated(s UserState, profile model.UserProfile) UserState {
	s.Data = &profile
	s.IsAuthenticated = true
	return s
}

// ReduceUser applies a session event.
func ReduceUser(s UserState, e UserEvent) UserState {
	return e.apply(s)
}

// User is the session container.
type User struct {
	*container[UserState, UserEvent]
	api   AuthAPI
	creds CredentialSink
}

// NewUser creates a session container. Issued tokens are handed to creds.
func NewUser(api AuthAPI, creds CredentialSink) *User {
	return &User{
		container: newContainer("user", InitialUserState(), ReduceUser),
		api:       api,
		creds:     creds,
	}
}

// Register creates an account and signs it in.
func (u *User) Register(ctx context.Context, data model.RegisterData) *Task {
	return runAsync(ctx, u.container, "register",
		func(r Result[model.UserProfile]) UserEvent { return Registered{Result: r} },
		func(ctx context.Context) (model.UserProfile, error) {
			res, err := u.api.Register(ctx, data)
			if err != nil {
				return model.UserProfile{}, err
			}
			u.persist(ctx, res.Credentials)
			return res.User, nil
		},
	)
}

// Login signs in with email and password.
func (u *User) Login(ctx context.Context, data model.LoginData) *Task {
	return runAsync(ctx, u.container, "login",
		func(r Result[model.UserProfile]) UserEvent { return LoggedIn{Result: r} },
		func(ctx context.Context) (model.UserProfile, error) {
			res, err := u.api.Login(ctx, data)
			if err != nil {
				return model.UserProfile{}, err
			}
			u.persist(ctx, res.Credentials)
			return res.User, nil
		},
	)
}

// Logout ends the session. Persisted credentials are removed whatever the
// upstream answer.
func (u *User) Logout(ctx context.Context) *Task {
	return runAsync(ctx, u.container, "logout",
		func(r Result[struct{}]) UserEvent { return LoggedOut{Result: r} },
		func(ctx context.Context) (struct{}, error) {
			err := u.api.Logout(ctx)
			if cerr := u.creds.Clear(ctx); cerr != nil {
				u.log.Warn().Err(cerr).Msg("Failed to clear credentials")
			}
			return struct{}{}, err
		},
	)
}

// FetchProfile loads the profile of the current session.
func (u *User) FetchProfile(ctx context.Context) *Task {
	return runAsync(ctx, u.container, "fetch_profile",
		func(r Result[model.UserProfile]) UserEvent { return ProfileFetched{Result: r} },
		u.api.GetUser,
	)
}

// UpdateProfile changes the profile of the current session.
func (u *User) UpdateProfile(ctx context.Context, update model.ProfileUpdate) *Task {
	return runAsync(ctx, u.container, "update_profile",
		func(r Result[model.UserProfile]) UserEvent { return ProfileUpdated{Result: r} },
		func(ctx context.Context) (model.UserProfile, error) {
			return u.api.UpdateUser(ctx, update)
		},
	)
}

func (u *User) persist(ctx context.Context, creds model.Credentials) {
	if err := u.creds.Save(ctx, creds); err != nil {
		u.log.Warn().Err(err).Msg("Failed to persist credentials")
	}
}
