package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/dto"
	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/i18n"
)

// GetBuilder handles GET /api/builder requests.
//
// @Summary      Builder contents
// @Tags         Builder
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.BuilderResponse} "Builder"
// @Router       /api/builder [get]
func (h *Handler) GetBuilder(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewBuilderResponse(h.store.Builder.State()))
}

// SetBun handles PUT /api/builder/bun requests.
//
// @Summary      Set the bun
// @Description  Puts a catalog bun in the bun slot. An empty id clears the slot.
// @Tags         Builder
// @Accept       json
// @Produce      json
// @Param        request body dto.SetBunRequest true "Bun"
// @Success      200 {object} dto.SuccessResponse{data=dto.BuilderResponse} "Builder"
// @Failure      400 {object} dto.ErrorResponse "Not a bun"
// @Failure      404 {object} dto.ErrorResponse "Ingredient not in the loaded catalog"
// @Router       /api/builder/bun [put]
func (h *Handler) SetBun(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SetBunRequest](c)
	if err != nil {
		builder.BadRequest(err)
		return
	}

	id := strings.TrimSpace(req.IngredientID)
	if id == "" {
		builder.SuccessOK(dto.NewBuilderResponse(h.store.Builder.SetBun(nil)))
		return
	}

	ing, ok := h.lookupIngredient(c, id)
	if !ok {
		return
	}
	if ing.Type != model.CategoryBun {
		builder.BadRequest(dto.ErrNotABun)
		return
	}
	builder.SuccessOK(dto.NewBuilderResponse(h.store.Builder.SetBun(&ing)))
}

// AddIngredient handles POST /api/builder/ingredients requests.
//
// @Summary      Add an ingredient
// @Description  Appends a catalog ingredient to the builder. A bun replaces the bun slot.
// @Tags         Builder
// @Accept       json
// @Produce      json
// @Param        request body dto.AddIngredientRequest true "Ingredient"
// @Success      201 {object} dto.SuccessResponse{data=dto.BuilderResponse} "Builder"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Ingredient not in the loaded catalog"
// @Router       /api/builder/ingredients [post]
func (h *Handler) AddIngredient(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddIngredientRequest](c)
	if err != nil {
		builder.BadRequest(err)
		return
	}

	ing, ok := h.lookupIngredient(c, strings.TrimSpace(req.IngredientID))
	if !ok {
		return
	}
	builder.SuccessCreated(dto.NewBuilderResponse(h.store.Builder.AddIngredient(ing)))
}

// RemoveIngredient handles DELETE /api/builder/ingredients/:id requests.
//
// @Summary      Remove a filling
// @Description  Removes the filling with the given instance id. Unknown ids and the bun are ignored.
// @Tags         Builder
// @Produce      json
// @Param        id path string true "Constructor instance id"
// @Success      200 {object} dto.SuccessResponse{data=dto.BuilderResponse} "Builder"
// @Router       /api/builder/ingredients/{id} [delete]
func (h *Handler) RemoveIngredient(c *gin.Context) {
	state := h.store.Builder.RemoveIngredient(c.Param("id"))
	NewResponseBuilder(c).SuccessOK(dto.NewBuilderResponse(state))
}

// MoveIngredient handles POST /api/builder/ingredients/:index/move requests.
//
// @Summary      Move a filling
// @Description  Swaps the filling at index with its neighbour. Moves past either end change nothing.
// @Tags         Builder
// @Accept       json
// @Produce      json
// @Param        index path int true "Filling index"
// @Param        request body dto.MoveIngredientRequest true "Direction"
// @Success      200 {object} dto.SuccessResponse{data=dto.BuilderResponse} "Builder"
// @Failure      400 {object} dto.ErrorResponse "Invalid index or direction"
// @Router       /api/builder/ingredients/{index}/move [post]
func (h *Handler) MoveIngredient(c *gin.Context) {
	builder := NewResponseBuilder(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationIndex, err)
		return
	}

	req, err := BuildRequestAndValidate[dto.MoveIngredientRequest](c)
	if err != nil {
		if errors.Is(err, dto.ErrInvalidDirection) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDirection, err)
			return
		}
		builder.BadRequest(err)
		return
	}

	builder.SuccessOK(dto.NewBuilderResponse(h.store.Builder.MoveIngredient(index, req.Direction)))
}

// ClearBuilder handles DELETE /api/builder requests.
//
// @Summary      Clear the builder
// @Tags         Builder
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.BuilderResponse} "Empty builder"
// @Router       /api/builder [delete]
func (h *Handler) ClearBuilder(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewBuilderResponse(h.store.Builder.Clear()))
}

// lookupIngredient resolves id against the loaded catalog and answers 404
// when it is missing.
func (h *Handler) lookupIngredient(c *gin.Context, id string) (model.Ingredient, bool) {
	ing, ok := h.store.Ingredients.State().Lookup(id)
	if !ok {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyIngredientNotFound, nil)
	}
	return ing, ok
}
