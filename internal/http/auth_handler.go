package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/dto"
	"github.com/FindTheRhythm/stellar-burgers/internal/i18n"
)

// Register handles POST /api/auth/register requests.
//
// @Summary      Register
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Account"
// @Param        wait query bool false "Wait for the call to settle"
// @Success      200 {object} dto.SuccessResponse{data=store.UserState} "Session"
// @Success      202 {object} dto.SuccessResponse{data=store.UserState} "Registration started"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      403 {object} dto.ErrorResponse "Rejected upstream"
// @Router       /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.RegisterRequest](c)
	if err != nil {
		NewResponseBuilder(c).BadRequest(err)
		return
	}
	task := h.store.User.Register(c.Request.Context(), req.ToModel())
	h.respondAsync(c, task, h.userState)
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Sign in
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Param        wait query bool false "Wait for the call to settle"
// @Success      200 {object} dto.SuccessResponse{data=store.UserState} "Session"
// @Success      202 {object} dto.SuccessResponse{data=store.UserState} "Sign in started"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Rejected upstream"
// @Router       /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.LoginRequest](c)
	if err != nil {
		NewResponseBuilder(c).BadRequest(err)
		return
	}
	task := h.store.User.Login(c.Request.Context(), req.ToModel())
	h.respondAsync(c, task, h.userState)
}

// Logout handles POST /api/auth/logout requests.
//
// @Summary      Sign out
// @Description  Revokes the refresh token upstream. The session is cleared whatever the outcome.
// @Tags         Auth
// @Produce      json
// @Param        wait query bool false "Wait for the call to settle"
// @Success      200 {object} dto.SuccessResponse{data=store.UserState} "Signed out"
// @Success      202 {object} dto.SuccessResponse{data=store.UserState} "Sign out started"
// @Failure      401 {object} dto.ErrorResponse "Not signed in"
// @Router       /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	task := h.store.User.Logout(c.Request.Context())
	h.respondAsync(c, task, h.userState)
}

// GetUser handles GET /api/auth/user requests.
//
// @Summary      Session state
// @Tags         Auth
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=store.UserState} "Session"
// @Router       /api/auth/user [get]
func (h *Handler) GetUser(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.store.User.State())
}

// FetchUser handles POST /api/auth/user/fetch requests.
//
// @Summary      Load the profile
// @Description  Fetches the profile with the stored credentials, restoring the session on success
// @Tags         Auth
// @Produce      json
// @Param        wait query bool false "Wait for the call to settle"
// @Success      200 {object} dto.SuccessResponse{data=store.UserState} "Session"
// @Success      202 {object} dto.SuccessResponse{data=store.UserState} "Fetch started"
// @Failure      401 {object} dto.ErrorResponse "No valid credentials"
// @Router       /api/auth/user/fetch [post]
func (h *Handler) FetchUser(c *gin.Context) {
	task := h.store.User.FetchProfile(c.Request.Context())
	h.respondAsync(c, task, h.userState)
}

// UpdateUser handles PATCH /api/auth/user requests.
//
// @Summary      Update the profile
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateProfileRequest true "Changed fields"
// @Param        wait query bool false "Wait for the call to settle"
// @Success      200 {object} dto.SuccessResponse{data=store.UserState} "Session"
// @Success      202 {object} dto.SuccessResponse{data=store.UserState} "Update started"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Not signed in"
// @Router       /api/auth/user [patch]
func (h *Handler) UpdateUser(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.UpdateProfileRequest](c)
	if err != nil {
		NewResponseBuilder(c).BadRequest(err)
		return
	}
	task := h.store.User.UpdateProfile(c.Request.Context(), req.ToModel())
	h.respondAsync(c, task, h.userState)
}

// ForgotPassword handles POST /api/auth/password-reset requests.
//
// @Summary      Request a password reset
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.ForgotPasswordRequest true "Email"
// @Success      200 {object} dto.SuccessResponse{data=dto.MessageResponse} "Code sent"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      502 {object} dto.ErrorResponse "Upstream failure"
// @Router       /api/auth/password-reset [post]
func (h *Handler) ForgotPassword(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.ForgotPasswordRequest](c)
	if err != nil {
		NewResponseBuilder(c).BadRequest(err)
		return
	}
	h.callPassword(c, i18n.MsgKeyResetEmailSent, func(ctx context.Context) error {
		return h.password.ForgotPassword(ctx, req.Email)
	})
}

// ResetPassword handles POST /api/auth/password-reset/reset requests.
//
// @Summary      Reset the password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.ResetPasswordRequest true "New password and mailed code"
// @Success      200 {object} dto.SuccessResponse{data=dto.MessageResponse} "Password changed"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      502 {object} dto.ErrorResponse "Upstream failure"
// @Router       /api/auth/password-reset/reset [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.ResetPasswordRequest](c)
	if err != nil {
		NewResponseBuilder(c).BadRequest(err)
		return
	}
	h.callPassword(c, i18n.MsgKeyPasswordReset, func(ctx context.Context) error {
		return h.password.ResetPassword(ctx, req.Password, req.Token)
	})
}

func (h *Handler) callPassword(c *gin.Context, messageKey string, call func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.waitTimeout)
	defer cancel()

	if err := call(ctx); err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	NewResponseBuilder(c).SuccessOK(dto.MessageResponse{Message: message})
}

func (h *Handler) userState() any {
	return h.store.User.State()
}
