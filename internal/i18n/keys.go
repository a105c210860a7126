package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeySessionRequired indicates the route needs a signed-in session.
	ErrKeySessionRequired = "error.session_required"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyIngredientNotFound indicates an id missing from the loaded catalog.
	ErrKeyIngredientNotFound = "error.ingredient_not_found"
	// ErrKeyOrderNotFound indicates no order with the requested number.
	ErrKeyOrderNotFound = "error.order_not_found"
	// ErrKeyUpstreamFailed indicates the upstream API rejected or failed the call.
	ErrKeyUpstreamFailed = "error.upstream_failed"
	// ErrKeyValidationCategory indicates an unknown ingredient type filter.
	ErrKeyValidationCategory = "error.validation.category"
	// ErrKeyValidationDirection indicates a move direction other than up or down.
	ErrKeyValidationDirection = "error.validation.direction"
	// ErrKeyValidationIndex indicates a malformed filling index.
	ErrKeyValidationIndex = "error.validation.index"
	// ErrKeyValidationOrderNumber indicates a malformed order number.
	ErrKeyValidationOrderNumber = "error.validation.order_number"
)

// Confirmation message keys.
const (
	// MsgKeyResetEmailSent confirms that a reset code was mailed.
	MsgKeyResetEmailSent = "message.reset_email_sent"
	// MsgKeyPasswordReset confirms a successful password reset.
	MsgKeyPasswordReset = "message.password_reset"
)
