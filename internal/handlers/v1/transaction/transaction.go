package transaction

import (
	"time"

	"github.com/carson-networks/finsight-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          int64   `json:"id" doc:"Monotonic transaction ID"`
	Amount      float64 `json:"amount" doc:"Transaction amount"`
	Type        string  `json:"type" doc:"income or expense"`
	Category    string  `json:"category" doc:"Free-form category label"`
	Date        string  `json:"date" doc:"YYYY-MM-DD transaction date"`
	Description string  `json:"description,omitempty" doc:"Optional description"`
	CreatedAt   string  `json:"created_at" doc:"RFC3339 record creation time"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Amount:      tx.Amount.InexactFloat64(),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Date:        tx.Date.Format("2006-01-02"),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
