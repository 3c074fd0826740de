package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finsight-server/internal/logging"
	"github.com/carson-networks/finsight-server/internal/service"
)

// SummaryResponseBody is the response body for the ledger summary.
// Monthly maps are keyed by YYYY-MM and are never null, only empty.
type SummaryResponseBody struct {
	TotalIncome      float64            `json:"total_income" doc:"All-time income total"`
	TotalExpenses    float64            `json:"total_expenses" doc:"All-time expense total"`
	Savings          float64            `json:"savings" doc:"Income minus expenses, may be negative"`
	MonthlyIncome    map[string]float64 `json:"monthly_income" doc:"Per-month income totals keyed by YYYY-MM"`
	MonthlyExpenses  map[string]float64 `json:"monthly_expenses" doc:"Per-month expense totals keyed by YYYY-MM"`
	TransactionCount int                `json:"transaction_count" doc:"Number of transactions in the ledger"`
}

// SummaryOutput is the Huma output for the ledger summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// summarizer is the interface for computing the ledger summary.
type summarizer interface {
	Summarize(ctx context.Context) (service.Summary, error)
}

// SummaryHandler handles GET /get-summary.
type SummaryHandler struct {
	AnalyticsService summarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{AnalyticsService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/get-summary",
		Summary:     "Ledger summary",
		Description: "Returns all-time totals and per-month income and expense buckets.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func monthMap(totals []service.MonthTotal) map[string]float64 {
	byMonth := make(map[string]float64, len(totals))
	for _, bucket := range totals {
		byMonth[bucket.Month] = bucket.Total.InexactFloat64()
	}
	return byMonth
}

func (h *SummaryHandler) handle(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summarizeMs")
	}
	summary, err := h.AnalyticsService.Summarize(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize ledger", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", summary.TransactionCount)
	}

	return &SummaryOutput{Body: SummaryResponseBody{
		TotalIncome:      summary.TotalIncome.InexactFloat64(),
		TotalExpenses:    summary.TotalExpenses.InexactFloat64(),
		Savings:          summary.Savings.InexactFloat64(),
		MonthlyIncome:    monthMap(summary.MonthlyIncome),
		MonthlyExpenses:  monthMap(summary.MonthlyExpenses),
		TransactionCount: summary.TransactionCount,
	}}, nil
}
