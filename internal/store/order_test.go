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

func TestReduceOrder(t *testing.T) {
	failure := &model.RequestError{Message: "Error"}
	modal := testOtherOrder

	tests := []struct {
		name     string
		initial  store.OrderState
		event    store.OrderEvent
		expected func(store.OrderState) store.OrderState
	}{
		{
			name:    "submit pending sets request flag",
			initial: store.InitialOrderState(),
			event:   store.OrderSubmitted{Result: store.Pending[model.Order]()},
			expected: func(s store.OrderState) store.OrderState {
				s.OrderRequest = true
				return s
			},
		},
		{
			name:    "submit success stores modal data",
			initial: store.OrderState{Orders: []model.Order{}, OrderRequest: true},
			event:   store.OrderSubmitted{Result: store.Succeeded(testOrder)},
			expected: func(s store.OrderState) store.OrderState {
				o := testOrder
				s.OrderModalData = &o
				s.OrderRequest = false
				return s
			},
		},
		{
			name:    "submit failure keeps modal data",
			initial: store.OrderState{Orders: []model.Order{}, OrderRequest: true, OrderModalData: &modal},
			event:   store.OrderSubmitted{Result: store.Failed[model.Order](failure)},
			expected: func(s store.OrderState) store.OrderState {
				s.OrderRequest = false
				return s
			},
		},
		{
			name:    "fetch by number pending sets loading",
			initial: store.InitialOrderState(),
			event:   store.OrderFetchedByNumber{Result: store.Pending[[]model.Order]()},
			expected: func(s store.OrderState) store.OrderState {
				s.IsLoadingNumber = true
				return s
			},
		},
		{
			name:    "fetch by number success takes the first order",
			initial: store.OrderState{Orders: []model.Order{}, IsLoadingNumber: true},
			event:   store.OrderFetchedByNumber{Result: store.Succeeded([]model.Order{testOrder, testOtherOrder})},
			expected: func(s store.OrderState) store.OrderState {
				o := testOrder
				s.OrderModalData = &o
				s.IsLoadingNumber = false
				return s
			},
		},
		{
			name:    "fetch by number empty result leaves modal",
			initial: store.OrderState{Orders: []model.Order{}, IsLoadingNumber: true, OrderModalData: &modal},
			event:   store.OrderFetchedByNumber{Result: store.Succeeded([]model.Order{})},
			expected: func(s store.OrderState) store.OrderState {
				s.IsLoadingNumber = false
				return s
			},
		},
		{
			name:    "fetch by number failure clears loading only",
			initial: store.OrderState{Orders: []model.Order{}, IsLoadingNumber: true, OrderModalData: &modal},
			event:   store.OrderFetchedByNumber{Result: store.Failed[[]model.Order](failure)},
			expected: func(s store.OrderState) store.OrderState {
				s.IsLoadingNumber = false
				return s
			},
		},
		{
			name:    "history pending sets loading",
			initial: store.InitialOrderState(),
			event:   store.HistoryFetched{Result: store.Pending[[]model.Order]()},
			expected: func(s store.OrderState) store.OrderState {
				s.IsLoadingOrder = true
				return s
			},
		},
		{
			name:    "history success replaces orders and clears error",
			initial: store.OrderState{Orders: []model.Order{testOtherOrder}, IsLoadingOrder: true, OrderError: failure},
			event:   store.HistoryFetched{Result: store.Succeeded([]model.Order{testOrder})},
			expected: func(s store.OrderState) store.OrderState {
				s.Orders = []model.Order{testOrder}
				s.OrderError = nil
				s.IsLoadingOrder = false
				return s
			},
		},
		{
			name:    "history failure keeps orders",
			initial: store.OrderState{Orders: []model.Order{testOtherOrder}, IsLoadingOrder: true},
			event:   store.HistoryFetched{Result: store.Failed[[]model.Order](failure)},
			expected: func(s store.OrderState) store.OrderState {
				s.OrderError = failure
				s.IsLoadingOrder = false
				return s
			},
		},
		{
			name:    "close modal resets modal and request flag",
			initial: store.OrderState{Orders: []model.Order{}, OrderRequest: true, OrderModalData: &modal},
			event:   store.ModalClosed{},
			expected: func(s store.OrderState) store.OrderState {
				s.OrderModalData = nil
				s.OrderRequest = false
				return s
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.ReduceOrder(tt.initial, tt.event)
			assert.Equal(t, tt.expected(tt.initial), got)
		})
	}
}

func TestOrders_CloseModal_Idempotent(t *testing.T) {
	o := store.NewOrders(new(mocks.MockBurgerAPI))

	first := o.CloseModal()
	second := o.CloseModal()

	assert.Equal(t, store.InitialOrderState(), first)
	assert.Equal(t, first, second)
}

func TestOrders_Submit(t *testing.T) {
	previous := testOtherOrder

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockBurgerAPI)
		expectError   bool
		expectedModal *model.Order
	}{
		{
			name: "success stores the created order",
			setupMocks: func(m *mocks.MockBurgerAPI) {
				m.On("CreateOrder", mock.Anything, []string{"ing1", "ing2"}).Return(testOrder, nil)
			},
			expectedModal: &testOrder,
		},
		{
			name: "failure keeps the previous modal",
			setupMocks: func(m *mocks.MockBurgerAPI) {
				m.On("CreateOrder", mock.Anything, []string{"ing1", "ing2"}).
					Return(model.Order{}, &model.RequestError{Message: "You should be authorised", Name: model.ErrNameAPI})
			},
			expectError:   true,
			expectedModal: &previous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mocks.MockBurgerAPI)
			tt.setupMocks(api)
			api.On("GetOrderByNumber", mock.Anything, previous.Number).Return([]model.Order{previous}, nil)

			o := store.NewOrders(api)
			require.NoError(t, waitTask(t, o.FetchByNumber(context.Background(), previous.Number)))

			err := waitTask(t, o.Submit(context.Background(), []string{"ing1", "ing2"}))

			s := o.State()
			assert.False(t, s.OrderRequest)
			assert.Equal(t, tt.expectedModal, s.OrderModalData)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			api.AssertExpectations(t)
		})
	}
}

func TestOrders_Submit_PendingBeforeReturn(t *testing.T) {
	api := new(mocks.MockBurgerAPI)
	release := make(chan struct{})
	api.On("CreateOrder", mock.Anything, []string{"ing1"}).
		Run(func(mock.Arguments) { <-release }).
		Return(testOrder, nil)

	o := store.NewOrders(api)
	task := o.Submit(context.Background(), []string{"ing1"})

	assert.True(t, o.State().OrderRequest)
	close(release)
	require.NoError(t, waitTask(t, task))
	assert.False(t, o.State().OrderRequest)
}

func TestOrders_Submit_OutlivesCallerContext(t *testing.T) {
	api := new(mocks.MockBurgerAPI)
	release := make(chan struct{})
	api.On("CreateOrder", mock.Anything, []string{"ing1"}).
		Run(func(args mock.Arguments) {
			<-release
			ctx := args.Get(0).(context.Context)
			assert.NoError(t, ctx.Err())
		}).
		Return(testOrder, nil)

	o := store.NewOrders(api)
	ctx, cancel := context.WithCancel(context.Background())
	task := o.Submit(ctx, []string{"ing1"})
	cancel()
	close(release)

	require.NoError(t, waitTask(t, task))
	require.NotNil(t, o.State().OrderModalData)
	assert.Equal(t, testOrder.Number, o.State().OrderModalData.Number)
}

func TestOrders_FetchHistory(t *testing.T) {
	api := new(mocks.MockBurgerAPI)
	api.On("GetOrders", mock.Anything).Return([]model.Order{testOrder, testOtherOrder}, nil).Once()
	api.On("GetOrders", mock.Anything).Return(nil, errors.New("jwt malformed")).Once()

	o := store.NewOrders(api)

	require.NoError(t, waitTask(t, o.FetchHistory(context.Background())))
	assert.Equal(t, []model.Order{testOrder, testOtherOrder}, o.State().Orders)

	require.Error(t, waitTask(t, o.FetchHistory(context.Background())))
	s := o.State()
	assert.Equal(t, []model.Order{testOrder, testOtherOrder}, s.Orders)
	require.NotNil(t, s.OrderError)
	assert.Equal(t, "jwt malformed", s.OrderError.Message)
	assert.False(t, s.IsLoadingOrder)
}
