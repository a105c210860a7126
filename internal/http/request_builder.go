// Package http exposes the session store over a local JSON API: the
// snapshot of every container, builder edits, asynchronous upstream
// operations and the order resolver.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/dto"
	"github.com/FindTheRhythm/stellar-burgers/internal/i18n"
	"github.com/FindTheRhythm/stellar-burgers/internal/middleware"
)

// ResponseBuilder writes the JSON envelopes of the API: dto.SuccessResponse
// for results and dto.ErrorResponse with a translated message for failures.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	b.c.JSON(statusCode, dto.NewSuccess(data).WithRequestID(middleware.GetRequestID(b.c)))
}

// SuccessOK answers 200 with data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated answers 201 with data.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// SuccessAccepted answers 202 with data, used for operations still in flight.
func (b *ResponseBuilder) SuccessAccepted(data any) {
	b.Success(http.StatusAccepted, data)
}

// Error aborts with statusCode and the message for messageKey in the
// client's locale. err, when set, is attached for the error logger.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.ErrorWithDetails(statusCode, message, nil, err)
}

// ErrorWithDetails aborts with a literal message and optional details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, message string, details map[string]string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	resp := dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithDetails(details).
		WithRequestID(middleware.GetRequestID(b.c))
	b.c.AbortWithStatusJSON(statusCode, resp)
}

// BadRequest answers 400 for a body that failed to bind or validate. Field
// validation errors are reported as is; anything else gets the generic
// invalid body message.
func (b *ResponseBuilder) BadRequest(err error) {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		b.ErrorWithDetails(http.StatusBadRequest, validationErr.Error(),
			map[string]string{"field": validationErr.Field}, err)
		return
	}
	b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}

// BuildRequest decodes the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validator interface for types that can validate themselves.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate builds a request and validates it if it implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if validator, ok := any(req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}
