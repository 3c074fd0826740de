package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finsight-server/internal/logging"
	"github.com/carson-networks/finsight-server/internal/operator"
	"github.com/carson-networks/finsight-server/internal/operator/actions"
	storagetx "github.com/carson-networks/finsight-server/internal/storage/transaction"
)

// CreateTransactionBody is the request body for recording a transaction.
type CreateTransactionBody struct {
	Amount      float64 `json:"amount" required:"true" doc:"Positive transaction amount"`
	Type        string  `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
	Category    string  `json:"category" required:"true" minLength:"1" doc:"Free-form category label"`
	Date        string  `json:"date" required:"true" doc:"YYYY-MM-DD transaction date"`
	Description string  `json:"description,omitempty" doc:"Optional description"`
}

// CreateTransactionInput is the Huma input for recording a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponseBody is the response body for recording a transaction.
type CreateTransactionResponseBody struct {
	Success     bool        `json:"success" doc:"Always true on success"`
	Transaction Transaction `json:"transaction" doc:"The recorded transaction"`
}

// CreateTransactionOutput is the Huma output for recording a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponseBody
}

// CreateTransactionHandler handles POST /add-transaction.
type CreateTransactionHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op *operator.OperatorDelegator) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the add transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "add-transaction",
		Method:      http.MethodPost,
		Path:        "/add-transaction",
		Summary:     "Add transaction",
		Description: "Appends a transaction to the ledger.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input. The type
// enum is enforced by the schema, amount positivity and the date format are
// checked here.
func parseCreateTransactionInput(input *CreateTransactionInput) (amount decimal.Decimal, date time.Time, err error) {
	amount = decimal.NewFromFloat(input.Body.Amount)
	if !amount.IsPositive() {
		return decimal.Zero, time.Time{}, huma.NewError(http.StatusBadRequest, "amount must be positive")
	}

	date, parseErr := time.Parse("2006-01-02", input.Body.Date)
	if parseErr != nil {
		return decimal.Zero, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", parseErr)
	}

	return amount, date, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	amount, date, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{
		Amount:      amount,
		Type:        storagetx.TransactionType(input.Body.Type),
		Category:    input.Body.Category,
		Date:        date,
		Description: input.Body.Description,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to add transaction", err)
	}

	created := action.Created
	if logData != nil {
		logData.AddData("transactionID", created.ID)
	}

	return &CreateTransactionOutput{Body: CreateTransactionResponseBody{
		Success: true,
		Transaction: Transaction{
			ID:          created.ID,
			Amount:      created.Amount.InexactFloat64(),
			Type:        string(created.Type),
			Category:    created.Category,
			Date:        created.Date.Format("2006-01-02"),
			Description: created.Description,
			CreatedAt:   created.CreatedAt.Format(time.RFC3339),
		},
	}}, nil
}
