package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/i18n"
	"github.com/FindTheRhythm/stellar-burgers/internal/store"
)

// DefaultWaitTimeout bounds how long a request waits for an upstream call to
// settle.
const DefaultWaitTimeout = 15 * time.Second

// PasswordAPI is the upstream password reset flow. It has no container
// state, so it is called synchronously.
type PasswordAPI interface {
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, password, token string) error
}

// Handler provides HTTP handlers over one session store.
type Handler struct {
	store       *store.Store
	password    PasswordAPI
	waitTimeout time.Duration
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithWaitTimeout sets how long ?wait=true requests wait for a settle.
func WithWaitTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.waitTimeout = d
		}
	}
}

// NewHandler creates a handler. password may be nil, which disables the
// password reset routes.
func NewHandler(st *store.Store, password PasswordAPI, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:       st,
		password:    password,
		waitTimeout: DefaultWaitTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GetState handles GET /api/state requests.
//
// @Summary      Session snapshot
// @Description  Returns the state of all five containers
// @Tags         State
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=store.Snapshot} "Snapshot"
// @Router       /api/state [get]
func (h *Handler) GetState(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.store.Snapshot())
}

// respondAsync answers for an asynchronous container operation. Without
// ?wait=true the pending snapshot is returned with 202. Otherwise the request
// waits for the settle and answers 200 or the upstream failure.
func (h *Handler) respondAsync(c *gin.Context, task *store.Task, render func() any) {
	builder := NewResponseBuilder(c)

	if !wantsWait(c) {
		builder.SuccessAccepted(render())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.waitTimeout)
	defer cancel()

	if err := task.Wait(ctx); err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	builder.SuccessOK(render())
}

// respondUpstreamError maps a settled failure to a response. Upstream client
// errors keep their status; everything else is a bad gateway.
func (h *Handler) respondUpstreamError(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
		return
	}

	var reqErr *model.RequestError
	if !errors.As(err, &reqErr) || reqErr.Message == "" {
		builder.Error(http.StatusBadGateway, i18n.ErrKeyUpstreamFailed, err)
		return
	}

	status := http.StatusBadGateway
	if reqErr.Status >= http.StatusBadRequest && reqErr.Status < http.StatusInternalServerError {
		status = reqErr.Status
	}
	var details map[string]string
	if reqErr.Name != "" {
		details = map[string]string{"name": reqErr.Name}
	}
	builder.ErrorWithDetails(status, reqErr.Message, details, err)
}

func wantsWait(c *gin.Context) bool {
	wait, err := strconv.ParseBool(c.Query("wait"))
	return err == nil && wait
}
