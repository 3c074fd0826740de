package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finsight-server/internal/handlers/v1/analytics"
	"github.com/carson-networks/finsight-server/internal/handlers/v1/status"
	"github.com/carson-networks/finsight-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/finsight-server/internal/operator"
	"github.com/carson-networks/finsight-server/internal/service"
)

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	AllowedOrigins string
	Service        *service.Service
	Operator       *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("finsight-server", "1.0.0"))

	status.NewHandler().Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewResetTransactionsHandler(r.Operator).Register(humaAPI)
	analytics.NewSummaryHandler(r.Service.Analytics).Register(humaAPI)
	analytics.NewForecastHandler(r.Service.Analytics).Register(humaAPI)

	handler := withRequestLogging(withCORS(mux, r.AllowedOrigins), r.Logger)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           handler,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
