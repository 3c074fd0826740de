package actions

import (
	"context"

	"github.com/carson-networks/finsight-server/internal/storage"
)

// IAction is a unit of ledger mutation processed by the operator. The
// in-memory store is its own atomic unit, so actions mutate it directly
// rather than through a transactional writer.
type IAction interface {
	Perform(ctx context.Context, store *storage.Storage) error
}
