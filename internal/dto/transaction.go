package dto

import (
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams defines query parameters for listing ledger entries.
type ListTransactionsParams struct {
	AccountID *int64  `form:"accountId" binding:"omitempty,min=1"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	ID              int64           `json:"id"`
	AccountID       int64           `json:"accountId"`
	Type            string          `json:"type"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	NewBalance      decimal.Decimal `json:"newBalance"`
	Amount          decimal.Decimal `json:"amount"`
	Reason          string          `json:"reason"`
	Date            string          `json:"date"`
	Note            *string         `json:"note"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		AccountID:       t.AccountID,
		Type:            string(t.Type),
		PreviousBalance: t.PreviousBalance,
		NewBalance:      t.NewBalance,
		Amount:          t.Amount,
		Reason:          t.Reason,
		Date:            t.Date,
		Note:            t.Note,
		CreatedAt:       t.CreatedAt,
	}
}

func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsResponse wraps the list of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"` // Absent on the last page
}
