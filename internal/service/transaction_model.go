package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finsight-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          int64
	Amount      decimal.Decimal
	Type        transaction.TransactionType
	Category    string
	Date        time.Time
	Description string
	CreatedAt   time.Time
}
