package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTP_ResetTransactions_ClearsLedgerAndRestartsIDs(t *testing.T) {
	api, store := newLedgerAPI(t)

	created := api.Post("/add-transaction", CreateTransactionBody{
		Amount: 42, Type: "expense", Category: "misc", Date: "2025-06-01",
	})
	assert.Equal(t, http.StatusOK, created.Code)

	resp := api.Delete("/reset")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ResetTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)

	rows, err := store.Transactions.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, rows)

	// The next insert starts the ID sequence over.
	recreated := api.Post("/add-transaction", CreateTransactionBody{
		Amount: 7, Type: "income", Category: "salary", Date: "2025-06-02",
	})
	assert.Equal(t, http.StatusOK, recreated.Code)
	var recreatedBody CreateTransactionResponseBody
	assert.NoError(t, json.NewDecoder(recreated.Body).Decode(&recreatedBody))
	assert.Equal(t, int64(1), recreatedBody.Transaction.ID)
}

func TestHTTP_ResetTransactions_EmptyLedgerSucceeds(t *testing.T) {
	api, _ := newLedgerAPI(t)

	resp := api.Delete("/reset")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ResetTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
}
