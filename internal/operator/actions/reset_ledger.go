package actions

import (
	"context"

	"github.com/carson-networks/finsight-server/internal/storage"
)

type ResetLedger struct {
	IAction
}

func (r *ResetLedger) Perform(ctx context.Context, store *storage.Storage) error {
	return store.Transactions.Clear(ctx)
}
