package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusAndMessage maps an application error to an HTTP status code and an
// actionable client message. Every failure here is recoverable at request
// scope: the client refreshes its view or retries, never restarts a session.
func statusAndMessage(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "the requested resource does not exist"

	case errors.Is(err, order.ErrUnauthorizedActor),
		errors.Is(err, ErrActorRoleMismatch):
		return http.StatusForbidden, "you are not allowed to perform this operation on this order"

	case errors.Is(err, commands.ErrOrderAlreadyClaimed):
		return http.StatusConflict, "this order was just claimed by another rider, refresh your list"

	case errors.Is(err, commands.ErrOrderNotPending):
		return http.StatusConflict, "this order is no longer available for claiming"

	case errors.Is(err, commands.ErrConcurrentModification):
		return http.StatusConflict, "the order changed while processing your request, please retry"

	case errors.Is(err, product.ErrInsufficientStock):
		return http.StatusConflict, "not enough stock left for this quantity"

	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, "the order state does not allow this operation"

	case errors.Is(err, errs.ErrUnavailable):
		return http.StatusServiceUnavailable, "the service is temporarily unavailable, please retry"

	case errors.Is(err, ErrActorHeadersMissing),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()

	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func errorJSON(err error) (int, ErrorResponse) {
	code, message := statusAndMessage(err)
	return code, ErrorResponse{Code: code, Message: message}
}
