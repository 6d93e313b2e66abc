package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/account"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	authhandler "github.com/carson-networks/finance-server/internal/handlers/v1/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/category"
	"github.com/carson-networks/finance-server/internal/handlers/v1/savingsgoal"
	"github.com/carson-networks/finance-server/internal/handlers/v1/status"
	"github.com/carson-networks/finance-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger        *logrus.Logger
	Port          string
	Service       *service.Service
	Authenticator *auth.Authenticator
}

// Handler builds the full route table: the huma operations, health,
// metrics, and a JSON 404 for everything else.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	config := huma.DefaultConfig("Finance API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		apiutil.BearerScheme: {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humago.New(mux, config)
	api.UseMiddleware(apiutil.RequestMiddleware(api, r.Logger))
	api.UseMiddleware(apiutil.AuthMiddleware(api, r.Authenticator))

	authhandler.NewHandler(r.Service.User).Register(api)
	account.NewHandler(r.Service.Account).Register(api)
	category.NewHandler(r.Service.Category).Register(api)
	transaction.NewHandler(r.Service.Transaction).Register(api)
	savingsgoal.NewHandler(r.Service.SavingsGoal).Register(api)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/api/health", logging.LoggingWrapper("Health", r.Logger, statusHandler.Handler))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("/", logging.LoggingWrapper("NotFound", r.Logger, statusHandler.NotFound))

	return mux
}

// Serve listens until ctx is done, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
