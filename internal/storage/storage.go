package storage

import (
	"github.com/carson-networks/finsight-server/internal/storage/transaction"
)

type Storage struct {
	Transactions transaction.ITransactionTable
}

func NewStorage() *Storage {
	return &Storage{
		Transactions: transaction.NewTable(),
	}
}
