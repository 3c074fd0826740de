package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two recognized transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a ledger record. Records are immutable once
// inserted; the only collection mutations are append and clear.
type Transaction struct {
	ID          int64
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

// TransactionCreate is the input for appending a new transaction.
type TransactionCreate struct {
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Date        time.Time
	Description string
}

// ITransactionTable defines the interface for ledger storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context) ([]*Transaction, error)
	Clear(ctx context.Context) error
}
