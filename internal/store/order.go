package store

import (
	"context"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

// OrdersAPI is the order side of the upstream API.
type OrdersAPI interface {
	CreateOrder(ctx context.Context, ingredientIDs []string) (model.Order, error)
	GetOrderByNumber(ctx context.Context, number int) ([]model.Order, error)
	GetOrders(ctx context.Context) ([]model.Order, error)
}

// OrderState tracks submission, the detail modal and the personal history.
type OrderState struct {
	Orders          []model.Order       `json:"orders"`
	OrderRequest    bool                `json:"orderRequest"`
	OrderError      *model.RequestError `json:"orderError"`
	OrderModalData  *model.Order        `json:"orderModalData"`
	IsLoadingNumber bool                `json:"isLoadingNumber"`
	IsLoadingOrder  bool                `json:"isLoadingOrder"`
}

// InitialOrderState returns the state before any order activity.
func InitialOrderState() OrderState {
	return OrderState{Orders: []model.Order{}}
}

// OrderEvent is an order lifecycle transition.
type OrderEvent interface {
	apply(OrderState) OrderState
}

// OrderSubmitted is the lifecycle event of an order submission.
type OrderSubmitted struct {
	Result Result[model.Order]
}

func (e OrderSubmitted) apply(s OrderState) OrderState {
	switch e.Result.Phase {
	case PhasePending:
		s.OrderRequest = true
	case PhaseSucceeded:
		order := e.Result.Payload
		s.OrderModalData = &order
		s.OrderRequest = false
	case PhaseFailed:
		s.OrderRequest = false
	}
	return s
}

// OrderFetchedByNumber is the lifecycle event of a lookup by number.
type OrderFetchedByNumber struct {
	Result Result[[]model.Order]
}

func (e OrderFetchedByNumber) apply(s OrderState) OrderState {
	switch e.Result.Phase {
	case PhasePending:
		s.IsLoadingNumber = true
	case PhaseSucceeded:
		if len(e.Result.Payload) > 0 {
			order := e.Result.Payload[0]
			s.OrderModalData = &order
		}
		s.IsLoadingNumber = false
	case PhaseFailed:
		s.IsLoadingNumber = false
	}
	return s
}

// HistoryFetched is the lifecycle event of a personal history fetch.
type HistoryFetched struct {
	Result Result[[]model.Order]
}

func (e HistoryFetched) apply(s OrderState) OrderState {
	switch e.Result.Phase {
	case PhasePending:
		s.IsLoadingOrder = true
	case PhaseSucceeded:
		orders := e.Result.Payload
		if orders == nil {
			orders = []model.Order{}
		}
		s.Orders = orders
		s.OrderError = nil
		s.IsLoadingOrder = false
	case PhaseFailed:
		s.OrderError = e.Result.Err
		s.IsLoadingOrder = false
	}
	return s
}

// ModalClosed dismisses the order detail view.
type ModalClosed struct{}

func (ModalClosed) apply(s OrderState) OrderState {
	s.OrderModalData = nil
	s.OrderRequest = false
	return s
}

// ReduceOrder applies an order event.
func ReduceOrder(s OrderState, e OrderEvent) OrderState {
	return e.apply(s)
}

// Orders is the order lifecycle container.
type Orders struct {
	*container[OrderState, OrderEvent]
	api OrdersAPI
}

// NewOrders creates an order container backed by api.
func NewOrders(api OrdersAPI) *Orders {
	return &Orders{
		container: newContainer("orders", InitialOrderState(), ReduceOrder),
		api:       api,
	}
}

// Submit places an order for ingredientIDs. A burger without a bun is not
// rejected here.
func (o *Orders) Submit(ctx context.Context, ingredientIDs []string) *Task {
	ids := append([]string(nil), ingredientIDs...)
	return runAsync(ctx, o.container, "submit",
		func(r Result[model.Order]) OrderEvent { return OrderSubmitted{Result: r} },
		func(ctx context.Context) (model.Order, error) {
			return o.api.CreateOrder(ctx, ids)
		},
	)
}

// FetchByNumber loads a single order into the detail modal.
func (o *Orders) FetchByNumber(ctx context.Context, number int) *Task {
	return runAsync(ctx, o.container, "fetch_by_number",
		func(r Result[[]model.Order]) OrderEvent { return OrderFetchedByNumber{Result: r} },
		func(ctx context.Context) ([]model.Order, error) {
			return o.api.GetOrderByNumber(ctx, number)
		},
	)
}

// FetchHistory loads the signed-in user's orders.
func (o *Orders) FetchHistory(ctx context.Context) *Task {
	return runAsync(ctx, o.container, "fetch_history",
		func(r Result[[]model.Order]) OrderEvent { return HistoryFetched{Result: r} },
		o.api.GetOrders,
	)
}

// CloseModal clears the detail modal and the request flag. Idempotent.
func (o *Orders) CloseModal() OrderState {
	return o.dispatch(ModalClosed{})
}
