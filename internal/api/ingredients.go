package api

import (
	"context"
	"net/http"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

type ingredientsResponse struct {
	baseResponse
	Data []model.Ingredient `json:"data"`
}

// GetIngredients fetches the full catalog.
func (c *Client) GetIngredients(ctx context.Context) ([]model.Ingredient, error) {
	var resp ingredientsResponse
	err := c.call(ctx, request{
		method:   http.MethodGet,
		path:     "/ingredients",
		endpoint: "/ingredients",
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
