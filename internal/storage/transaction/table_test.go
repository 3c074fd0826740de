package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func makeCreate(amount string, txType TransactionType) *TransactionCreate {
	return &TransactionCreate{
		Amount:   decimal.RequireFromString(amount),
		Type:     txType,
		Category: "groceries",
		Date:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestInsert_AssignsMonotonicIDs(t *testing.T) {
	table := NewTable()

	first, err := table.Insert(context.Background(), makeCreate("10.00", TypeExpense))
	assert.NoError(t, err)
	second, err := table.Insert(context.Background(), makeCreate("20.00", TypeIncome))
	assert.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestInsert_RejectsInvalidInput(t *testing.T) {
	table := NewTable()

	_, err := table.Insert(context.Background(), makeCreate("0", TypeExpense))
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = table.Insert(context.Background(), makeCreate("-5.00", TypeExpense))
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = table.Insert(context.Background(), makeCreate("5.00", TransactionType("transfer")))
	assert.ErrorIs(t, err, ErrInvalidType)

	create := makeCreate("5.00", TypeExpense)
	create.Date = time.Time{}
	_, err = table.Insert(context.Background(), create)
	assert.ErrorIs(t, err, ErrZeroDate)

	rows, err := table.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, rows, "rejected transactions must not be stored")
}

func TestList_InsertionOrder(t *testing.T) {
	table := NewTable()

	amounts := []string{"1.00", "2.00", "3.00"}
	for _, amount := range amounts {
		_, err := table.Insert(context.Background(), makeCreate(amount, TypeExpense))
		assert.NoError(t, err)
	}

	rows, err := table.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, int64(i+1), row.ID)
		assert.True(t, row.Amount.Equal(decimal.RequireFromString(amounts[i])))
	}
}

func TestClear_EmptiesLedgerAndRestartsIDs(t *testing.T) {
	table := NewTable()

	_, err := table.Insert(context.Background(), makeCreate("10.00", TypeExpense))
	assert.NoError(t, err)
	_, err = table.Insert(context.Background(), makeCreate("20.00", TypeIncome))
	assert.NoError(t, err)

	assert.NoError(t, table.Clear(context.Background()))

	rows, err := table.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, rows)

	replacement, err := table.Insert(context.Background(), makeCreate("30.00", TypeExpense))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), replacement.ID, "ID sequence restarts after clear")
}
