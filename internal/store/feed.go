package store

import (
	"context"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

// FeedAPI fetches the public order feed.
type FeedAPI interface {
	GetFeed(ctx context.Context) (model.Feed, error)
}

// FeedState holds the latest feed snapshot. Items is nil until the first
// successful fetch.
type FeedState struct {
	Items   *model.Feed         `json:"items"`
	Loading bool                `json:"loading"`
	Error   *model.RequestError `json:"error"`
}

// InitialFeedState returns the state before the first fetch.
func InitialFeedState() FeedState {
	return FeedState{}
}

// Orders returns the feed orders, empty before the first fetch.
func (s FeedState) Orders() []model.Order {
	if s.Items == nil || s.Items.Orders == nil {
		return []model.Order{}
	}
	return s.Items.Orders
}

// FeedFetched is the lifecycle event of a feed fetch.
type FeedFetched struct {
	Result Result[model.Feed]
}

// ReduceFeed applies a feed fetch lifecycle event. Failures keep the last
// good snapshot.
func ReduceFeed(s FeedState, e FeedFetched) FeedState {
	switch e.Result.Phase {
	case PhasePending:
		s.Loading = true
	case PhaseSucceeded:
		feed := e.Result.Payload
		s.Items = &feed
		s.Loading = false
		s.Error = nil
	case PhaseFailed:
		s.Loading = false
		s.Error = e.Result.Err
	}
	return s
}

// Feed is the public feed container.
type Feed struct {
	*container[FeedState, FeedFetched]
	api FeedAPI
}

// NewFeed creates a feed container backed by api.
func NewFeed(api FeedAPI) *Feed {
	return &Feed{
		container: newContainer("feed", InitialFeedState(), ReduceFeed),
		api:       api,
	}
}

// Fetch replaces the feed snapshot.
func (f *Feed) Fetch(ctx context.Context) *Task {
	return runAsync(ctx, f.container, "fetch",
		func(r Result[model.Feed]) FeedFetched { return FeedFetched{Result: r} },
		f.api.GetFeed,
	)
}
