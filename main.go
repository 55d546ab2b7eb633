package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-engine/api"
	"github.com/carson-networks/finance-engine/internal/cache"
	"github.com/carson-networks/finance-engine/internal/config"
	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/operator"
	"github.com/carson-networks/finance-engine/internal/service"
	"github.com/carson-networks/finance-engine/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-engine starting")

	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("godotenv.Load")
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logrus.WithError(err).Fatal("logging.SetLevel")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	var resultCache cache.Cache
	if envConfig.RedisAddress != "" {
		redisCache := cache.NewRedisCache(envConfig.RedisAddress)
		defer redisCache.Close()
		resultCache = redisCache
		logrus.WithField("address", envConfig.RedisAddress).Info("cache.redis")
	} else {
		resultCache = cache.NewMemoryCache()
		logrus.Info("cache.memory")
	}

	reader := dbStorage.Read()
	svc := service.NewService(reader, delegator, resultCache, service.SettingsFromConfig(envConfig))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:      logger,
		Port:        envConfig.HTTPPort,
		Service:     svc,
		DB:          dbStorage,
		Predictions: reader.Predictions,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logrus.WithError(err).Error("HttpServer.Serve")
	}
	logrus.Info("finance-engine stopped")
}
