package apiutil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/observability"
)

// BearerScheme is the name of the security scheme that protected
// operations list in huma.Operation.Security.
const BearerScheme = "bearer"

// BearerSecurity marks an operation as requiring a bearer token.
var BearerSecurity = []map[string][]string{{BearerScheme: {}}}

type tokenAuthenticator interface {
	Authenticate(header string) (auth.Identity, error)
}

// AuthMiddleware authenticates operations that declare BearerSecurity and
// attaches the identity to the request context.
func AuthMiddleware(api huma.API, authenticator tokenAuthenticator) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !requiresBearer(ctx.Operation()) {
			next(ctx)
			return
		}

		id, err := authenticator.Authenticate(ctx.Header("Authorization"))
		if err != nil {
			status, msg := http.StatusForbidden, MsgInvalidToken
			if errors.Is(err, auth.ErrNoToken) {
				status, msg = http.StatusUnauthorized, MsgNoToken
			}
			if logData := logging.GetLogData(ctx.Context()); logData != nil {
				logData.AddData("authError", err.Error())
			}
			_ = huma.WriteErr(api, ctx, status, msg)
			return
		}

		if logData := logging.GetLogData(ctx.Context()); logData != nil {
			logData.AddData("userID", id.UserID)
		}
		next(huma.WithContext(ctx, auth.WithIdentity(ctx.Context(), id)))
	}
}

func requiresBearer(op *huma.Operation) bool {
	if op == nil {
		return false
	}
	for _, requirement := range op.Security {
		if _, ok := requirement[BearerScheme]; ok {
			return true
		}
	}
	return false
}

// RequestMiddleware gives every operation its own LogData, records the
// request duration metric, and turns panics into a 500.
func RequestMiddleware(api huma.API, logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operationID := "unknown"
		if op := ctx.Operation(); op != nil {
			operationID = op.OperationID
		}

		logData := logging.NewLogData(logger)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)
		logData.AddData("operation", operationID)
		ctx = huma.WithContext(ctx, logging.WithLogData(ctx.Context(), logData))

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				logData.AddData("panic", fmt.Sprint(r))
				_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, MsgInternal)
			}

			status := ctx.Status()
			if status == 0 {
				status = http.StatusOK
			}
			duration := time.Since(start)
			observability.RecordHTTPRequest(operationID, status, duration)

			logData.AddData("status", status)
			logData.AddData("durationMs", duration.Milliseconds())
			if status >= http.StatusInternalServerError {
				logData.Log().Errorf("Handler.%s.Error", operationID)
				return
			}
			logData.Log().Infof("Handler.%s.Complete", operationID)
		}()

		next(ctx)
	}
}

// UserID returns the authenticated user's id.
func UserID(ctx context.Context) (int64, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return 0, huma.Error401Unauthorized(MsgNoToken)
	}
	return id.UserID, nil
}
