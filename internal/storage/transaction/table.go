package transaction

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrNonPositiveAmount = errors.New("transaction amount must be positive")
	ErrInvalidType       = errors.New("transaction type must be income or expense")
	ErrZeroDate          = errors.New("transaction date must be set")
)

// Table is the in-memory implementation of ITransactionTable. The ledger
// lives for the lifetime of the process; IDs are monotonic and restart at 1
// after a clear.
type Table struct {
	mu           sync.RWMutex
	transactions []*Transaction
	nextID       int64
}

func NewTable() *Table {
	return &Table{nextID: 1}
}

// Insert validates the record, assigns the next ID, and appends it.
func (t *Table) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	if !create.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if !create.Type.Valid() {
		return nil, ErrInvalidType
	}
	if create.Date.IsZero() {
		return nil, ErrZeroDate
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	row := &Transaction{
		ID:          t.nextID,
		Amount:      create.Amount,
		Type:        create.Type,
		Category:    create.Category,
		Date:        create.Date,
		Description: create.Description,
		CreatedAt:   time.Now(),
	}
	t.nextID++
	t.transactions = append(t.transactions, row)

	return row, nil
}

// List returns all transactions in insertion order.
func (t *Table) List(ctx context.Context) ([]*Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]*Transaction, len(t.transactions))
	copy(rows, t.transactions)
	return rows, nil
}

// Clear drops every transaction and resets the ID sequence.
func (t *Table) Clear(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.transactions = nil
	t.nextID = 1
	return nil
}
