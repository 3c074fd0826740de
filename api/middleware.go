package api

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finsight-server/internal/logging"
)

// withCORS answers preflight requests and stamps the configured origin on
// every response so browser dashboards on another port can call the API.
func withCORS(next http.Handler, allowedOrigins string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, req)
	})
}

// withRequestLogging gives each request an ID and a LogData, and emits the
// Start/Complete pair around the handler.
func withRequestLogging(next http.Handler, log *logrus.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID, _ := uuid.NewV4()

		logData := logging.NewLogData(log)
		logData.AddData("requestID", requestID.String())
		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)

		log.WithField("requestID", requestID.String()).
			Infof("Handler.%v %v.Start", req.Method, req.URL.Path)

		stopTimer := logData.AddTiming("durationMs")
		next.ServeHTTP(w, req.WithContext(logging.WithLogData(req.Context(), logData)))
		stopTimer()

		logData.Log().Infof("Handler.%v %v.Complete", req.Method, req.URL.Path)
	})
}
