package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

var (
	// ErrNotAuthenticated is returned by authenticated calls without stored tokens.
	ErrNotAuthenticated = &model.RequestError{Message: "no stored credentials", Name: model.ErrNameAuth, Status: http.StatusUnauthorized}
	// ErrNoRefreshToken is returned when a refresh is needed but no refresh token is stored.
	ErrNoRefreshToken = &model.RequestError{Message: "no refresh token stored", Name: model.ErrNameAuth, Status: http.StatusUnauthorized}
)

const expiredTokenMessage = "jwt expired"

// baseResponse is the envelope every upstream reply carries.
type baseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (r *baseResponse) base() *baseResponse { return r }

type envelope interface {
	base() *baseResponse
}

// decode turns an upstream reply into out or a *model.RequestError.
func decode(status int, body []byte, out envelope) error {
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		var failure baseResponse
		_ = json.Unmarshal(body, &failure)
		msg := failure.Message
		if msg == "" {
			msg = fmt.Sprintf("%d %s", status, http.StatusText(status))
		}
		return &model.RequestError{Message: msg, Name: model.ErrNameHTTP, Status: status}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &model.RequestError{Message: "malformed response: " + err.Error(), Name: model.ErrNameAPI, Status: status}
	}
	if b := out.base(); !b.Success {
		msg := b.Message
		if msg == "" {
			msg = "request was not successful"
		}
		return &model.RequestError{Message: msg, Name: model.ErrNameAPI, Status: status}
	}
	return nil
}

func isExpiredToken(err error) bool {
	var reqErr *model.RequestError
	return errors.As(err, &reqErr) && reqErr.Message == expiredTokenMessage
}

// countsAgainstUpstream keeps client errors and caller cancellation from
// opening the circuit.
func countsAgainstUpstream(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var reqErr *model.RequestError
	if errors.As(err, &reqErr) && reqErr.Status > 0 {
		return reqErr.Status >= http.StatusInternalServerError
	}
	return true
}
