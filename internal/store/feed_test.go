package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/mocks"
	"github.com/FindTheRhythm/stellar-burgers/internal/store"
)

func TestReduceFeed(t *testing.T) {
	feed := model.Feed{Orders: []model.Order{testOrder}, Total: 10, TotalToday: 2}
	newer := model.Feed{Orders: []model.Order{testOtherOrder}, Total: 11, TotalToday: 3}
	failure := &model.RequestError{Message: "Failed to fetch", Name: model.ErrNameNetwork}

	tests := []struct {
		name     string
		initial  store.FeedState
		result   store.Result[model.Feed]
		expected store.FeedState
	}{
		{
			name:     "pending sets loading",
			initial:  store.InitialFeedState(),
			result:   store.Pending[model.Feed](),
			expected: store.FeedState{Loading: true},
		},
		{
			name:     "success replaces the snapshot",
			initial:  store.FeedState{Items: &feed, Loading: true, Error: failure},
			result:   store.Succeeded(newer),
			expected: store.FeedState{Items: &newer},
		},
		{
			name:     "failure keeps the last snapshot",
			initial:  store.FeedState{Items: &feed, Loading: true},
			result:   store.Failed[model.Feed](failure),
			expected: store.FeedState{Items: &feed, Error: failure},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.ReduceFeed(tt.initial, store.FeedFetched{Result: tt.result})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFeedState_Orders(t *testing.T) {
	assert.Empty(t, store.InitialFeedState().Orders())
	assert.NotNil(t, store.InitialFeedState().Orders())

	s := store.FeedState{Items: &model.Feed{Orders: []model.Order{testOrder}}}
	assert.Equal(t, []model.Order{testOrder}, s.Orders())
}

func TestFeed_Fetch(t *testing.T) {
	api := new(mocks.MockBurgerAPI)
	feed := model.Feed{Orders: []model.Order{testOrder, testOtherOrder}, Total: 100, TotalToday: 5}
	api.On("GetFeed", mock.Anything).Return(feed, nil).Once()
	api.On("GetFeed", mock.Anything).Return(model.Feed{}, errors.New("503 Service Unavailable")).Once()

	f := store.NewFeed(api)

	require.NoError(t, waitTask(t, f.Fetch(context.Background())))
	s := f.State()
	require.NotNil(t, s.Items)
	assert.Equal(t, 100, s.Items.Total)
	assert.Equal(t, 5, s.Items.TotalToday)

	require.Error(t, waitTask(t, f.Fetch(context.Background())))
	s = f.State()
	require.NotNil(t, s.Items)
	assert.Equal(t, feed, *s.Items)
	require.NotNil(t, s.Error)
	assert.False(t, s.Loading)
	api.AssertExpectations(t)
}
