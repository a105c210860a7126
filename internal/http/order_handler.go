package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/dto"
	"github.com/FindTheRhythm/stellar-burgers/internal/i18n"
)

// SubmitOrder handles POST /api/orders requests.
//
// @Summary      Submit the builder
// @Description  Places an order for the builder contents. The bun is sent on both sides of the burger.
// @Tags         Orders
// @Produce      json
// @Param        wait query bool false "Wait for the submission to settle"
// @Success      200 {object} dto.SuccessResponse{data=store.OrderState} "Settled order state"
// @Success      202 {object} dto.SuccessResponse{data=store.OrderState} "Submission started"
// @Failure      401 {object} dto.ErrorResponse "Not signed in"
// @Failure      502 {object} dto.ErrorResponse "Upstream failure"
// @Router       /api/orders [post]
func (h *Handler) SubmitOrder(c *gin.Context) {
	task := h.store.SubmitBuilder(c.Request.Context())
	h.respondAsync(c, task, func() any { return h.store.Orders.State() })
}

// GetOrder handles GET /api/orders/:number requests.
//
// @Summary      Order by number
// @Description  Resolves an order from history, the feed or the modal, then falls back to the upstream lookup
// @Tags         Orders
// @Produce      json
// @Param        number path int true "Order number"
// @Success      200 {object} dto.SuccessResponse{data=model.Order} "Order"
// @Failure      400 {object} dto.ErrorResponse "Invalid order number"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Failure      502 {object} dto.ErrorResponse "Upstream failure"
// @Router       /api/orders/{number} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationOrderNumber, err)
		return
	}

	if order := h.store.ResolveOrder(number); order != nil {
		builder.SuccessOK(order)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.waitTimeout)
	defer cancel()

	if err := h.store.Orders.FetchByNumber(c.Request.Context(), number).Wait(ctx); err != nil {
		h.respondUpstreamError(c, err)
		return
	}

	if order := h.store.ResolveOrder(number); order != nil {
		builder.SuccessOK(order)
		return
	}
	builder.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, nil)
}

// CloseOrderModal handles DELETE /api/orders/modal requests.
//
// @Summary      Close the order modal
// @Tags         Orders
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=store.OrderState} "Order state"
// @Router       /api/orders/modal [delete]
func (h *Handler) CloseOrderModal(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.store.Orders.CloseModal())
}

// GetOrderHistory handles GET /api/orders/history requests.
//
// @Summary      Personal order history
// @Tags         Orders
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderHistoryResponse} "History"
// @Failure      401 {object} dto.ErrorResponse "Not signed in"
// @Router       /api/orders/history [get]
func (h *Handler) GetOrderHistory(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewOrderHistoryResponse(h.store.Orders.State()))
}

// FetchOrderHistory handles POST /api/orders/history/fetch requests.
//
// @Summary      Refresh the order history
// @Tags         Orders
// @Produce      json
// @Param        wait query bool false "Wait for the fetch to settle"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderHistoryResponse} "Settled history"
// @Success      202 {object} dto.SuccessResponse{data=dto.OrderHistoryResponse} "Fetch started"
// @Failure      401 {object} dto.ErrorResponse "Not signed in"
// @Failure      502 {object} dto.ErrorResponse "Upstream failure"
// @Router       /api/orders/history/fetch [post]
func (h *Handler) FetchOrderHistory(c *gin.Context) {
	task := h.store.Orders.FetchHistory(c.Request.Context())
	h.respondAsync(c, task, func() any { return dto.NewOrderHistoryResponse(h.store.Orders.State()) })
}
