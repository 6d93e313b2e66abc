// Package apiutil holds the pieces shared by every v1 handler: the response
// envelope, error mapping, the bearer-token middleware, and JSON types for
// money and ids.
package apiutil

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

const (
	MsgInternal        = "Internal server error"
	MsgNoToken         = "Access token required"
	MsgInvalidToken    = "Invalid or expired token"
	MsgInvalidID       = "Invalid ID parameter"
	MsgInvalidAccount  = "Invalid account"
	MsgInvalidCategory = "Invalid category"
	MsgInvalidGoal     = "Invalid savings goal"
)

// ErrorBody is the body of every error response.
type ErrorBody struct {
	status  int
	Success bool   `json:"success" doc:"Always false"`
	Message string `json:"error" doc:"Fixed error message"`
}

func (e *ErrorBody) Error() string {
	return e.Message
}

func (e *ErrorBody) GetStatus() int {
	return e.status
}

var _ huma.StatusError = (*ErrorBody)(nil)

func init() {
	huma.NewError = newError
}

// newError replaces huma's problem+json errors with the {success, error}
// envelope. Request validation failures are reported as 400 with the first
// validation message.
func newError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
		for _, err := range errs {
			var detailer huma.ErrorDetailer
			if errors.As(err, &detailer) {
				if d := detailer.ErrorDetail(); d != nil {
					msg = d.Message
					if d.Location != "" {
						msg = fmt.Sprintf("%s (%s)", d.Message, d.Location)
					}
					break
				}
			}
		}
	}
	if status >= http.StatusInternalServerError {
		msg = MsgInternal
	}
	return &ErrorBody{status: status, Message: msg}
}

// Internal logs err against the request and returns a 500.
func Internal(ctx context.Context, err error) error {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("internalError", err.Error())
	}
	return huma.Error500InternalServerError(MsgInternal, err)
}

// ServiceError maps the service layer's sentinel errors onto responses.
// notFound is the message used for a missing or foreign entity.
func ServiceError(ctx context.Context, err error, notFound string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.Error404NotFound(notFound)
	case errors.Is(err, service.ErrInvalidAccount):
		return huma.Error400BadRequest(MsgInvalidAccount)
	case errors.Is(err, service.ErrInvalidCategory):
		return huma.Error400BadRequest(MsgInvalidCategory)
	case errors.Is(err, service.ErrInvalidGoal):
		return huma.Error400BadRequest(MsgInvalidGoal)
	default:
		return Internal(ctx, err)
	}
}
