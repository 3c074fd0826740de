package service

import (
	"context"

	"github.com/carson-networks/finsight-server/internal/storage"
)

// TransactionService handles transaction read paths. Writes go through the
// operator so the ledger sees them one at a time.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns every transaction in insertion order.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:          row.ID,
			Amount:      row.Amount,
			Type:        row.Type,
			Category:    row.Category,
			Date:        row.Date,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
		}
	}

	return convertedTransactions, nil
}
