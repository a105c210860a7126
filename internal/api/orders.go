package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

type feedResponse struct {
	baseResponse
	Orders     []model.Order `json:"orders"`
	Total      int           `json:"total"`
	TotalToday int           `json:"totalToday"`
}

type createOrderRequest struct {
	Ingredients []string `json:"ingredients"`
}

type createOrderResponse struct {
	baseResponse
	Order model.Order `json:"order"`
	Name  string      `json:"name"`
}

type ordersResponse struct {
	baseResponse
	Orders []model.Order `json:"orders"`
}

// GetFeed fetches the public feed of all orders.
func (c *Client) GetFeed(ctx context.Context) (model.Feed, error) {
	var resp feedResponse
	err := c.call(ctx, request{
		method:   http.MethodGet,
		path:     "/orders/all",
		endpoint: "/orders/all",
	}, &resp)
	if err != nil {
		return model.Feed{}, err
	}
	c.remember(resp.Orders)
	return model.Feed{Orders: resp.Orders, Total: resp.Total, TotalToday: resp.TotalToday}, nil
}

// GetOrders fetches the signed-in user's orders.
func (c *Client) GetOrders(ctx context.Context) ([]model.Order, error) {
	var resp feedResponse
	err := c.call(ctx, request{
		method:   http.MethodGet,
		path:     "/orders",
		endpoint: "/orders",
		authed:   true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.remember(resp.Orders)
	return resp.Orders, nil
}

// CreateOrder submits ingredientIDs as a new order.
func (c *Client) CreateOrder(ctx context.Context, ingredientIDs []string) (model.Order, error) {
	var resp createOrderResponse
	err := c.call(ctx, request{
		method:   http.MethodPost,
		path:     "/orders",
		endpoint: "/orders",
		body:     createOrderRequest{Ingredients: ingredientIDs},
		authed:   true,
	}, &resp)
	if err != nil {
		return model.Order{}, err
	}
	order := resp.Order
	if order.Name == "" {
		order.Name = resp.Name
	}
	return order, nil
}

// GetOrderByNumber looks an order up by its number. Finished orders are
// served from the order cache when one is configured.
func (c *Client) GetOrderByNumber(ctx context.Context, number int) ([]model.Order, error) {
	if c.orderCache != nil {
		if order, ok := c.orderCache.Get(number); ok {
			return []model.Order{order}, nil
		}
	}

	var resp ordersResponse
	err := c.call(ctx, request{
		method:   http.MethodGet,
		path:     "/orders/" + strconv.Itoa(number),
		endpoint: "/orders/:number",
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.remember(resp.Orders)
	return resp.Orders, nil
}

// remember caches finished orders; their contents no longer change.
func (c *Client) remember(orders []model.Order) {
	if c.orderCache == nil {
		return
	}
	for _, o := range orders {
		if o.Status == model.OrderStatusDone {
			c.orderCache.Set(o.Number, o)
		}
	}
}
