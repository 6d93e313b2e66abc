package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/carson-networks/finance-server/api"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/seed"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("finance-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Warn("logging.SetLevel")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(store, envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	if envConfig.SeedFile != "" {
		seedFile, err := seed.Load(envConfig.SeedFile)
		if err != nil {
			logger.WithError(err).Fatal("seed.Load")
			return
		}
		if err := seed.Apply(ctx, delegator, seedFile, logger); err != nil {
			logger.WithError(err).Fatal("seed.Apply")
			return
		}
	}

	cache := auth.NewCache(envConfig.TokenCacheTTL, auth.WithLogger(logger))
	cache.Start(envConfig.TokenCacheSweepInterval)
	defer cache.Stop()

	authenticator := auth.NewAuthenticator(auth.NewJWTVerifier(envConfig.JWTSecret), cache)
	issuer := auth.NewIssuer(envConfig.JWTSecret, envConfig.TokenLifetime)
	svc := service.NewService(store, delegator, issuer)

	httpRest := api.Rest{
		Logger:        logger,
		Port:          envConfig.Port,
		Service:       svc,
		Authenticator: authenticator,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("api.Rest.Serve")
	}
	logger.Info("finance-server stopped")
}
