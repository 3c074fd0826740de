package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finsight-server/internal/storage"
	"github.com/carson-networks/finsight-server/internal/storage/transaction"
)

func TestListTransactions_EmptyLedger(t *testing.T) {
	svc := NewTransactionService(storage.NewStorage())

	transactions, err := svc.ListTransactions(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, transactions)
	assert.Empty(t, transactions)
}

func TestListTransactions_InsertionOrderAndFields(t *testing.T) {
	store := storage.NewStorage()
	svc := NewTransactionService(store)

	mustInsert(t, store, "3000.00", transaction.TypeIncome, "2025-06-01")
	mustInsert(t, store, "12.50", transaction.TypeExpense, "2025-05-15")

	transactions, err := svc.ListTransactions(context.Background())

	assert.NoError(t, err)
	assert.Len(t, transactions, 2)

	// Insertion order, not date order.
	assert.Equal(t, int64(1), transactions[0].ID)
	assert.Equal(t, int64(2), transactions[1].ID)
	assert.Equal(t, transaction.TypeIncome, transactions[0].Type)
	assert.True(t, transactions[0].Amount.Equal(decimal.RequireFromString("3000.00")))
	assert.Equal(t, "general", transactions[0].Category)
	assert.Equal(t, "2025-05-15", transactions[1].Date.Format("2006-01-02"))
	assert.False(t, transactions[1].CreatedAt.IsZero())
}
