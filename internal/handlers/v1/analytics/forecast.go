package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finsight-server/internal/logging"
	"github.com/carson-networks/finsight-server/internal/service"
)

// RiskBody is the risk assessment in the forecast response.
type RiskBody struct {
	Score   int      `json:"score" minimum:"0" maximum:"100" doc:"Heuristic risk score"`
	Badge   string   `json:"badge" enum:"Low,Medium,High" doc:"Risk band label"`
	Color   string   `json:"color" doc:"Display color for the badge"`
	Reasons []string `json:"reasons" doc:"Rules that fired, in rule order"`
}

// ForecastResponseBody is the response body for the expense forecast.
type ForecastResponseBody struct {
	ForecastLabels     []string  `json:"forecast_labels" doc:"Three projected YYYY-MM months"`
	PredictedExpenses  []float64 `json:"predicted_expenses" doc:"Projected expense totals"`
	PredictedIncome    []float64 `json:"predicted_income" doc:"Projected income totals"`
	HistoricalLabels   []string  `json:"historical_labels" doc:"Months the projection was fitted on"`
	HistoricalExpenses []float64 `json:"historical_expenses" doc:"Monthly expense totals for those months"`
	Risk               RiskBody  `json:"risk" doc:"Spending risk assessment"`
}

// ForecastOutput is the Huma output for the expense forecast.
type ForecastOutput struct {
	Body ForecastResponseBody
}

// forecaster is the interface for computing the forecast.
type forecaster interface {
	Forecast(ctx context.Context) (service.Forecast, error)
}

// ForecastHandler handles GET /forecast.
type ForecastHandler struct {
	AnalyticsService forecaster
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(svc forecaster) *ForecastHandler {
	return &ForecastHandler{AnalyticsService: svc}
}

// Register registers the forecast endpoint with the Huma API.
func (h *ForecastHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-forecast",
		Method:      http.MethodGet,
		Path:        "/forecast",
		Summary:     "Expense forecast",
		Description: "Projects the next three months of expenses and income and assesses spending risk.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *ForecastHandler) handle(ctx context.Context, _ *struct{}) (*ForecastOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("forecastMs")
	}
	forecast, err := h.AnalyticsService.Forecast(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute forecast", err)
	}

	if logData != nil {
		logData.AddData("riskScore", forecast.Risk.Score)
	}

	return &ForecastOutput{Body: ForecastResponseBody{
		ForecastLabels:     forecast.Labels,
		PredictedExpenses:  forecast.PredictedExpenses,
		PredictedIncome:    forecast.PredictedIncome,
		HistoricalLabels:   forecast.HistoricalLabels,
		HistoricalExpenses: forecast.HistoricalExpenses,
		Risk: RiskBody{
			Score:   forecast.Risk.Score,
			Badge:   forecast.Risk.Badge,
			Color:   forecast.Risk.Color,
			Reasons: forecast.Risk.Reasons,
		},
	}}, nil
}
