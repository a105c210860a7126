package store

import "github.com/FindTheRhythm/stellar-burgers/internal/domain/model"

// ResolveOrder finds the order with number, looking at the personal history
// first, then the public feed, then the detail modal. It returns nil when
// none of them holds the order.
func ResolveOrder(number int, orders OrderState, feed FeedState) *model.Order {
	if o, ok := model.FindOrder(orders.Orders, number); ok {
		return &o
	}
	if o, ok := model.FindOrder(feed.Orders(), number); ok {
		return &o
	}
	if orders.OrderModalData != nil && orders.OrderModalData.Number == number {
		o := *orders.OrderModalData
		return &o
	}
	return nil
}
