package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finsight-server/internal/logging"
	"github.com/carson-networks/finsight-server/internal/operator"
	"github.com/carson-networks/finsight-server/internal/operator/actions"
)

// ResetTransactionsResponseBody is the response body for clearing the ledger.
type ResetTransactionsResponseBody struct {
	Success bool `json:"success" doc:"Always true on success"`
}

// ResetTransactionsOutput is the Huma output for clearing the ledger.
type ResetTransactionsOutput struct {
	Body ResetTransactionsResponseBody
}

// ResetTransactionsHandler handles DELETE /reset.
type ResetTransactionsHandler struct {
	Operator *operator.OperatorDelegator
}

// NewResetTransactionsHandler creates a new ResetTransactionsHandler.
func NewResetTransactionsHandler(op *operator.OperatorDelegator) *ResetTransactionsHandler {
	return &ResetTransactionsHandler{Operator: op}
}

// Register registers the reset endpoint with the Huma API.
func (h *ResetTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "reset-transactions",
		Method:      http.MethodDelete,
		Path:        "/reset",
		Summary:     "Reset ledger",
		Description: "Removes every transaction and restarts ID assignment from 1.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ResetTransactionsHandler) handle(ctx context.Context, _ *struct{}) (*ResetTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("resetTransactionsMs")
	}
	err := h.Operator.Process(ctx, &actions.ResetLedger{})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to reset ledger", err)
	}

	return &ResetTransactionsOutput{Body: ResetTransactionsResponseBody{Success: true}}, nil
}
