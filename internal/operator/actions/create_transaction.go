package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finsight-server/internal/storage"
	"github.com/carson-networks/finsight-server/internal/storage/transaction"
)

type CreateTransaction struct {
	Amount      decimal.Decimal
	Type        transaction.TransactionType
	Category    string
	Date        time.Time
	Description string

	// Created holds the appended record once Perform succeeds.
	Created *transaction.Transaction

	IAction
}

func (c *CreateTransaction) Perform(ctx context.Context, store *storage.Storage) error {
	created, err := store.Transactions.Insert(ctx, &transaction.TransactionCreate{
		Amount:      c.Amount,
		Type:        c.Type,
		Category:    c.Category,
		Date:        c.Date,
		Description: c.Description,
	})
	if err != nil {
		return err
	}

	c.Created = created
	return nil
}
