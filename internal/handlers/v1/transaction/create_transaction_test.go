package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finsight-server/internal/operator"
	"github.com/carson-networks/finsight-server/internal/storage"
)

// newLedgerAPI wires the write handlers against a real storage and a running
// single-worker operator, matching the production write path.
func newLedgerAPI(t *testing.T) (humatest.TestAPI, *storage.Storage) {
	t.Helper()
	store := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(delegator).Register(api)
	NewResetTransactionsHandler(delegator).Register(api)
	return api, store
}

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	api, store := newLedgerAPI(t)

	resp := api.Post("/add-transaction", CreateTransactionBody{
		Amount:      12.50,
		Type:        "expense",
		Category:    "food",
		Date:        "2025-06-01",
		Description: "Coffee",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CreateTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.Transaction.ID)
	assert.Equal(t, 12.50, body.Transaction.Amount)
	assert.Equal(t, "expense", body.Transaction.Type)
	assert.Equal(t, "food", body.Transaction.Category)
	assert.Equal(t, "2025-06-01", body.Transaction.Date)
	assert.Equal(t, "Coffee", body.Transaction.Description)
	assert.NotEmpty(t, body.Transaction.CreatedAt)

	rows, err := store.Transactions.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestHTTP_CreateTransaction_IDsIncrement(t *testing.T) {
	api, _ := newLedgerAPI(t)

	first := api.Post("/add-transaction", CreateTransactionBody{
		Amount: 100, Type: "income", Category: "salary", Date: "2025-06-01",
	})
	second := api.Post("/add-transaction", CreateTransactionBody{
		Amount: 50, Type: "expense", Category: "food", Date: "2025-06-02",
	})

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)

	var firstBody, secondBody CreateTransactionResponseBody
	assert.NoError(t, json.NewDecoder(first.Body).Decode(&firstBody))
	assert.NoError(t, json.NewDecoder(second.Body).Decode(&secondBody))
	assert.Equal(t, int64(1), firstBody.Transaction.ID)
	assert.Equal(t, int64(2), secondBody.Transaction.ID)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	api, store := newLedgerAPI(t)

	// Huma schema validation rejects the request before the handler runs.
	resp := api.Post("/add-transaction", map[string]any{
		"amount": 10.0,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	rows, err := store.Transactions.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestHTTP_CreateTransaction_InvalidType(t *testing.T) {
	api, _ := newLedgerAPI(t)

	// The type enum is enforced by the schema.
	resp := api.Post("/add-transaction", CreateTransactionBody{
		Amount: 10, Type: "transfer", Category: "misc", Date: "2025-06-01",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateTransaction_NonPositiveAmount(t *testing.T) {
	api, store := newLedgerAPI(t)

	for _, amount := range []float64{0, -5.25} {
		resp := api.Post("/add-transaction", CreateTransactionBody{
			Amount: amount, Type: "expense", Category: "misc", Date: "2025-06-01",
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	}

	rows, err := store.Transactions.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestHTTP_CreateTransaction_InvalidDate(t *testing.T) {
	api, _ := newLedgerAPI(t)

	resp := api.Post("/add-transaction", CreateTransactionBody{
		Amount: 10, Type: "expense", Category: "misc", Date: "June 1st 2025",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
