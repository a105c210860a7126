package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/dto"
	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/i18n"
)

// GetIngredients handles GET /api/ingredients requests.
//
// @Summary      Ingredient catalog
// @Description  Returns the loaded catalog, optionally one category of it
// @Tags         Ingredients
// @Produce      json
// @Param        type query string false "Category filter" Enums(bun, main, sauce)
// @Success      200 {object} dto.SuccessResponse{data=dto.IngredientListResponse} "Catalog"
// @Failure      400 {object} dto.ErrorResponse "Unknown category"
// @Router       /api/ingredients [get]
func (h *Handler) GetIngredients(c *gin.Context) {
	builder := NewResponseBuilder(c)
	state := h.store.Ingredients.State()

	filter := c.Query("type")
	if filter == "" {
		builder.SuccessOK(dto.NewIngredientListResponse(state, state.Items))
		return
	}

	category := model.Category(filter)
	if !category.Valid() {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationCategory, nil)
		return
	}
	builder.SuccessOK(dto.NewIngredientListResponse(state, state.ByCategory(category)))
}

// FetchIngredients handles POST /api/ingredients/fetch requests.
//
// @Summary      Load the catalog
// @Description  Fetches the ingredient catalog from the upstream API
// @Tags         Ingredients
// @Produce      json
// @Param        wait query bool false "Wait for the fetch to settle"
// @Success      200 {object} dto.SuccessResponse{data=store.IngredientsState} "Settled catalog"
// @Success      202 {object} dto.SuccessResponse{data=store.IngredientsState} "Fetch started"
// @Failure      502 {object} dto.ErrorResponse "Upstream failure"
// @Failure      504 {object} dto.ErrorResponse "Fetch did not settle in time"
// @Router       /api/ingredients/fetch [post]
func (h *Handler) FetchIngredients(c *gin.Context) {
	task := h.store.Ingredients.Fetch(c.Request.Context())
	h.respondAsync(c, task, func() any { return h.store.Ingredients.State() })
}

// GetFeed handles GET /api/feed requests.
//
// @Summary      Public feed
// @Description  Returns the latest feed snapshot
// @Tags         Feed
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.FeedResponse} "Feed"
// @Router       /api/feed [get]
func (h *Handler) GetFeed(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewFeedResponse(h.store.Feed.State()))
}

// FetchFeed handles POST /api/feed/fetch requests.
//
// @Summary      Refresh the feed
// @Description  Fetches the public feed from the upstream API
// @Tags         Feed
// @Produce      json
// @Param        wait query bool false "Wait for the fetch to settle"
// @Success      200 {object} dto.SuccessResponse{data=dto.FeedResponse} "Settled feed"
// @Success      202 {object} dto.SuccessResponse{data=dto.FeedResponse} "Fetch started"
// @Failure      502 {object} dto.ErrorResponse "Upstream failure"
// @Router       /api/feed/fetch [post]
func (h *Handler) FetchFeed(c *gin.Context) {
	task := h.store.Feed.Fetch(c.Request.Context())
	h.respondAsync(c, task, func() any { return dto.NewFeedResponse(h.store.Feed.State()) })
}
