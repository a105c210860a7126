package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/mocks"
	"github.com/FindTheRhythm/stellar-burgers/internal/store"
)

func TestNew(t *testing.T) {
	t.Run("requires api", func(t *testing.T) {
		s, err := store.New(nil, nil)
		assert.ErrorIs(t, err, store.ErrNilAPI)
		assert.Nil(t, s)
	})

	t.Run("initial snapshot", func(t *testing.T) {
		s, err := store.New(new(mocks.MockBurgerAPI), nil)
		require.NoError(t, err)
		assert.Equal(t, store.InitialSnapshot(), s.Snapshot())
	})
}

func TestStore_ResolveOrder(t *testing.T) {
	api := new(mocks.MockBurgerAPI)
	api.On("GetOrders", mock.Anything).Return([]model.Order{testOrder}, nil)
	api.On("GetFeed", mock.Anything).Return(model.Feed{Orders: []model.Order{testOtherOrder}, Total: 2}, nil)

	s, err := store.New(api, nil)
	require.NoError(t, err)

	require.NoError(t, waitTask(t, s.Orders.FetchHistory(context.Background())))
	require.NoError(t, waitTask(t, s.Feed.Fetch(context.Background())))

	got := s.ResolveOrder(1)
	require.NotNil(t, got)
	assert.Equal(t, testOrder.ID, got.ID)

	got = s.ResolveOrder(2)
	require.NotNil(t, got)
	assert.Equal(t, testOtherOrder.ID, got.ID)

	assert.Nil(t, s.ResolveOrder(999))
}

func TestStore_SubmitBuilder(t *testing.T) {
	api := new(mocks.MockBurgerAPI)
	api.On("CreateOrder", mock.Anything, []string{testBun.ID, testMain.ID, testBun.ID}).Return(testOrder, nil)

	s, err := store.New(api, nil)
	require.NoError(t, err)
	s.Builder.SetBun(&testBun)
	s.Builder.AddIngredient(testMain)

	require.NoError(t, waitTask(t, s.SubmitBuilder(context.Background())))

	snap := s.Snapshot()
	require.NotNil(t, snap.Orders.OrderModalData)
	assert.Equal(t, testOrder.Number, snap.Orders.OrderModalData.Number)
	assert.False(t, snap.Orders.OrderRequest)
	api.AssertExpectations(t)
}

func TestStore_SubmitWithoutBun(t *testing.T) {
	api := new(mocks.MockBurgerAPI)
	api.On("CreateOrder", mock.Anything, []string{testMain.ID}).Return(testOrder, nil)

	s, err := store.New(api, nil)
	require.NoError(t, err)
	s.Builder.AddIngredient(testMain)

	assert.NoError(t, waitTask(t, s.SubmitBuilder(context.Background())))
	api.AssertExpectations(t)
}
