package store

import (
	"context"
	"errors"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

// ErrNilAPI is returned by New without an upstream API.
var ErrNilAPI = errors.New("store: upstream api is required")

// API is the full upstream surface consumed by the containers.
type API interface {
	IngredientsAPI
	OrdersAPI
	FeedAPI
	AuthAPI
}

// Store owns the five containers of one client session.
type Store struct {
	Ingredients *Ingredients
	Builder     *Builder
	Orders      *Orders
	Feed        *Feed
	User        *User
}

// Snapshot is a point-in-time copy of every container.
type Snapshot struct {
	Ingredients IngredientsState `json:"ingredients"`
	Builder     BuilderState     `json:"builder"`
	Orders      OrderState       `json:"order"`
	Feed        FeedState        `json:"feed"`
	User        UserState        `json:"user"`
}

// InitialSnapshot is the snapshot of a freshly created store.
func InitialSnapshot() Snapshot {
	return Snapshot{
		Ingredients: InitialIngredientsState(),
		Builder:     InitialBuilderState(),
		Orders:      InitialOrderState(),
		Feed:        InitialFeedState(),
		User:        InitialUserState(),
	}
}

// New creates a store. creds receives the tokens issued on register and
// login; it may be nil when nothing should be persisted.
func New(api API, creds CredentialSink) (*Store, error) {
	if api == nil {
		return nil, ErrNilAPI
	}
	if creds == nil {
		creds = discardCredentials{}
	}
	return &Store{
		Ingredients: NewIngredients(api),
		Builder:     NewBuilder(),
		Orders:      NewOrders(api),
		Feed:        NewFeed(api),
		User:        NewUser(api, creds),
	}, nil
}

// Snapshot reads every container. Containers are read one after another, so
// the result is not a transaction across them.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Ingredients: s.Ingredients.State(),
		Builder:     s.Builder.State(),
		Orders:      s.Orders.State(),
		Feed:        s.Feed.State(),
		User:        s.User.State(),
	}
}

// ResolveOrder looks number up in the current order and feed snapshots.
func (s *Store) ResolveOrder(number int) *model.Order {
	return ResolveOrder(number, s.Orders.State(), s.Feed.State())
}

// SubmitBuilder submits the current builder contents as an order.
func (s *Store) SubmitBuilder(ctx context.Context) *Task {
	return s.Orders.Submit(ctx, s.Builder.State().OrderIngredientIDs())
}

type discardCredentials struct{}

func (discardCredentials) Save(context.Context, model.Credentials) error { return nil }
func (discardCredentials) Clear(context.Context) error                   { return nil }
