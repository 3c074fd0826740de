package service

import (
	"github.com/carson-networks/finsight-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Analytics   *AnalyticsService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Analytics:   NewAnalyticsService(store),
	}
}
