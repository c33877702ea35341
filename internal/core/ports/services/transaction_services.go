package services

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
)

// TransactionSvcFacade exposes the append-only ledger for reading.
type TransactionSvcFacade interface {
	GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}
