package services

import (
	"strings"

	"finboard/internal/models"
	"finboard/internal/pagination"
	"finboard/internal/store"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store *store.Store
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(st *store.Store) TransactionServicer {
	return &transactionService{store: st}
}

// CreateTransaction records a new transaction ahead of all existing ones.
func (s *transactionService) CreateTransaction(tx models.Transaction) (*models.Transaction, error) {
	created, err := s.store.AddTransaction(tx)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetTransactions returns a filtered page of transactions, newest first.
func (s *transactionService) GetTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	var matched []models.Transaction
	for _, tx := range s.store.Transactions() {
		if filter.Type != nil && tx.Type != *filter.Type {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(tx.Description), search) &&
			!strings.Contains(strings.ToLower(tx.Category), search) {
			continue
		}
		matched = append(matched, tx)
	}

	result := pagination.Slice(matched, page)
	return &result, nil
}
