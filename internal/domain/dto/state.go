package dto

import (
	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/store"
)

// ErrNotABun is returned when the bun slot is given a filling or sauce.
var ErrNotABun = &ValidationError{Field: "ingredient_id", Message: "must reference a bun"}

// IngredientListResponse is a catalog view, optionally filtered by type.
//
// @Description Loaded ingredient catalog
type IngredientListResponse struct {
	Items     []model.Ingredient  `json:"items"`
	IsLoading bool                `json:"isLoading"`
	Error     *model.RequestError `json:"error,omitempty"`
} // @name IngredientListResponse

// NewIngredientListResponse renders items with the catalog flags of s.
func NewIngredientListResponse(s store.IngredientsState, items []model.Ingredient) IngredientListResponse {
	return IngredientListResponse{Items: items, IsLoading: s.IsLoading, Error: s.Error}
}

// BuilderResponse is the builder contents with their totals.
//
// @Description Burger builder contents
type BuilderResponse struct {
	Bun         *model.ConstructorIngredient  `json:"bun"`
	Ingredients []model.ConstructorIngredient `json:"ingredients"`
	TotalCount  int                           `json:"totalCount" example:"3"`
	TotalPrice  float64                       `json:"totalPrice" example:"2510"`
} // @name BuilderResponse

// NewBuilderResponse renders a builder snapshot.
func NewBuilderResponse(s store.BuilderState) BuilderResponse {
	return BuilderResponse{
		Bun:         s.Bun,
		Ingredients: s.Ingredients,
		TotalCount:  s.TotalCount(),
		TotalPrice:  s.TotalPrice(),
	}
}

// OrderHistoryResponse is the personal order history.
//
// @Description Personal order history
type OrderHistoryResponse struct {
	Orders    []model.Order       `json:"orders"`
	IsLoading bool                `json:"isLoading"`
	Error     *model.RequestError `json:"error,omitempty"`
} // @name OrderHistoryResponse

// NewOrderHistoryResponse renders the history part of an order snapshot.
func NewOrderHistoryResponse(s store.OrderState) OrderHistoryResponse {
	return OrderHistoryResponse{Orders: s.Orders, IsLoading: s.IsLoadingOrder, Error: s.OrderError}
}

// FeedResponse is the public feed with its derived order list.
//
// @Description Public order feed
type FeedResponse struct {
	Orders     []model.Order       `json:"orders"`
	Total      int                 `json:"total" example:"28752"`
	TotalToday int                 `json:"totalToday" example:"138"`
	Loading    bool                `json:"loading"`
	Error      *model.RequestError `json:"error,omitempty"`
} // @name FeedResponse

// NewFeedResponse renders a feed snapshot. Totals are zero before the first
// successful fetch.
func NewFeedResponse(s store.FeedState) FeedResponse {
	resp := FeedResponse{Orders: s.Orders(), Loading: s.Loading, Error: s.Error}
	if s.Items != nil {
		resp.Total = s.Items.Total
		resp.TotalToday = s.Items.TotalToday
	}
	return resp
}
