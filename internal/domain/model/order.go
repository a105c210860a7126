package model

import (
	"bytes"
	"encoding/json"
)

// OrderStatus is the server-defined order status.
type OrderStatus string

const (
	// OrderStatusCreated is reported right after submission.
	OrderStatusCreated OrderStatus = "created"
	// OrderStatusPending means the kitchen is working on the order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusDone means the order is ready.
	OrderStatusDone OrderStatus = "done"
)

// Order is an order as reported by the upstream API. Number is the
// human-facing order number and is distinct from ID.
type Order struct {
	ID          string        `json:"_id"`
	Status      OrderStatus   `json:"status"`
	Ingredients IngredientIDs `json:"ingredients"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
	Number      int           `json:"number"`
	Name        string        `json:"name"`
}

// Feed is a snapshot of the public order feed.
type Feed struct {
	Orders     []Order `json:"orders"`
	Total      int     `json:"total"`
	TotalToday int     `json:"totalToday"`
}

// FindOrder returns the first order in orders whose number equals number.
func FindOrder(orders []Order, number int) (Order, bool) {
	for _, o := range orders {
		if o.Number == number {
			return o, true
		}
	}
	return Order{}, false
}

// IngredientIDs is the ordered list of catalog ids of an order. The upstream
// sends plain ids in listings and full ingredient objects right after
// creation; both decode to ids.
type IngredientIDs []string

// UnmarshalJSON accepts an array of ids or an array of objects with "_id".
func (ids *IngredientIDs) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*ids = nil
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(IngredientIDs, 0, len(raw))
	for _, item := range raw {
		var id string
		if err := json.Unmarshal(item, &id); err == nil {
			out = append(out, id)
			continue
		}
		var obj struct {
			ID string `json:"_id"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return err
		}
		out = append(out, obj.ID)
	}
	*ids = out
	return nil
}
