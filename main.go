package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finsight-server/api"
	"github.com/carson-networks/finsight-server/internal/config"
	"github.com/carson-networks/finsight-server/internal/logging"
	"github.com/carson-networks/finsight-server/internal/operator"
	"github.com/carson-networks/finsight-server/internal/service"
	"github.com/carson-networks/finsight-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finsight-server starting")

	// Optional .env file for local development; real env vars win.
	_ = godotenv.Load()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	if level, err := logrus.ParseLevel(envConfig.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	ledger := storage.NewStorage()
	svc := service.NewService(ledger)

	delegator := operator.NewOperatorDelegator(ledger, 1)
	delegator.Start()
	defer delegator.Stop()

	httpRest := api.Rest{
		Logger:         logger,
		Port:           envConfig.Port,
		AllowedOrigins: envConfig.AllowedOrigins,
		Service:        svc,
		Operator:       delegator,
	}
	httpRest.Serve()
}
